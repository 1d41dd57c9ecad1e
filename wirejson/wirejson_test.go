package wirejson_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
	"github.com/leafbook/leafbook-go/wirejson"
)

type pair struct {
	Name  string
	Count int
	Note  *string
}

func newPairSchema() *wire.Object[pair] {
	o := wire.NewObject[pair]("pair")
	wire.Field(o, "name", codec.String(), func(p *pair) *string { return &p.Name }).Required()
	wire.Field(o, "count", codec.Int(), func(p *pair) *int { return &p.Count }).Default(0)
	wire.Field(o, "note", codec.Ptr(codec.String()), func(p *pair) **string { return &p.Note })
	return o
}

func TestUnmarshal_NumbersStayExact(t *testing.T) {
	m, err := wirejson.Unmarshal([]byte(`{"n": 9007199254740993}`))
	require.NoError(t, err)
	num, ok := m["n"].(json.Number)
	require.True(t, ok)
	assert.Equal(t, "9007199254740993", num.String())
}

func TestUnmarshal_ParseError(t *testing.T) {
	_, err := wirejson.Unmarshal([]byte(`{"broken":`))
	require.Error(t, err)
	iss, ok := wire.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, wire.CodeParseError, iss[0].Code)
}

func TestMarshal_DeclaredKeyOrder(t *testing.T) {
	s := newPairSchema()
	note := "n"
	b, err := wirejson.Marshal(s, pair{Name: "a", Count: 2, Note: &note})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","count":2,"note":"n"}`, string(b))
}

func TestMarshal_OmitsAbsentOptional(t *testing.T) {
	s := newPairSchema()
	b, err := wirejson.Marshal(s, pair{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","count":0}`, string(b))
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	s := newPairSchema()
	note := "n"
	orig := pair{Name: "a", Count: 7, Note: &note}

	b, err := wirejson.Marshal(s, orig)
	require.NoError(t, err)
	m, err := wirejson.Unmarshal(b)
	require.NoError(t, err)
	back, err := wire.Decode[pair](context.Background(), s, m)
	require.NoError(t, err)
	assert.True(t, s.Equal(orig, back))
}
