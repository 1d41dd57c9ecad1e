package codec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

type color string

const (
	red   color = "red"
	green color = "green"
)

func TestEnum_KnownVariant(t *testing.T) {
	c := codec.Enum(red, green)
	got, err := c.Decode(context.Background(), "green")
	require.NoError(t, err)
	assert.Equal(t, green, got)
	assert.Equal(t, "green", c.Encode(got))
}

func TestEnum_UnknownVariant(t *testing.T) {
	c := codec.Enum(red, green)
	_, err := c.Decode(context.Background(), "blue")
	require.Error(t, err)
	iss, ok := wire.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, wire.CodeUnknownEnum, iss[0].Code)
	assert.Equal(t, "blue", iss[0].Params["value"])
}

func TestEnum_NonString(t *testing.T) {
	c := codec.Enum(red, green)
	_, err := c.Decode(context.Background(), 3)
	require.Error(t, err)
	iss, _ := wire.AsIssues(err)
	assert.Equal(t, wire.CodeMalformedField, iss[0].Code)
}
