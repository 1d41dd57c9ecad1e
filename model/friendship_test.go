package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafbook/leafbook-go/model"
	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wirejson"
)

func TestFriendship_MinimalDecode(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "f1",
		"requesterId": "u1",
		"addresseeId": "u2",
		"createdAt": "2024-01-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	f, err := wire.Decode[model.Friendship](context.Background(), model.FriendshipSchema, raw)
	require.NoError(t, err)
	assert.Equal(t, model.FriendshipPending, f.Status)
	assert.Nil(t, f.Message)
	assert.Nil(t, f.Requester)
	assert.Nil(t, f.Addressee)
	assert.True(t, f.IsPending())
	assert.True(t, f.CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFriendship_UnknownStatusRejected(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "f1",
		"requesterId": "u1",
		"addresseeId": "u2",
		"status": "not_a_real_status",
		"createdAt": "2024-01-01T00:00:00Z"
	}`))
	require.NoError(t, err)

	_, err = wire.Decode[model.Friendship](context.Background(), model.FriendshipSchema, raw)
	require.Error(t, err)
	iss, ok := wire.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, wire.CodeUnknownEnum, iss[0].Code)
	assert.Equal(t, "/status", iss[0].Path)
	assert.Equal(t, "not_a_real_status", iss[0].Params["value"])
}

func TestFriendship_NestedSnapshots(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "f1",
		"requesterId": "u1",
		"addresseeId": "u2",
		"status": "accepted",
		"createdAt": "2024-01-01T00:00:00Z",
		"requester": {
			"id": "u1",
			"email": "a@example.com",
			"username": "ann",
			"created_at": "2023-05-01T00:00:00Z"
		}
	}`))
	require.NoError(t, err)

	f, err := wire.Decode[model.Friendship](context.Background(), model.FriendshipSchema, raw)
	require.NoError(t, err)
	require.NotNil(t, f.Requester)
	assert.Equal(t, "ann", f.Requester.Username)
	assert.True(t, f.IsAccepted())
}

func TestFriendship_NestedFieldErrorPath(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "f1",
		"requesterId": "u1",
		"addresseeId": "u2",
		"createdAt": "2024-01-01T00:00:00Z",
		"requester": {
			"id": "u1",
			"email": "a@example.com",
			"username": 42,
			"created_at": "2023-05-01T00:00:00Z"
		}
	}`))
	require.NoError(t, err)

	_, err = wire.Decode[model.Friendship](context.Background(), model.FriendshipSchema, raw)
	require.Error(t, err)
	iss, _ := wire.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/requester/username", iss[0].Path)
}

func TestFriendship_Navigation(t *testing.T) {
	f := model.Friendship{RequesterID: "u1", AddresseeID: "u2"}
	assert.True(t, f.Involves("u1"))
	assert.False(t, f.Involves("u3"))
	assert.Equal(t, "u2", f.OtherUserID("u1"))
	assert.Equal(t, "u1", f.OtherUserID("u2"))
	assert.Equal(t, "", f.OtherUserID("u3"))
}

func TestFriendsList_Defaults(t *testing.T) {
	l, err := wire.Decode[model.FriendsList](context.Background(), model.FriendsListSchema, map[string]any{})
	require.NoError(t, err)
	assert.NotNil(t, l.Friends)
	assert.Len(t, l.Friends, 0)
	assert.Equal(t, 0, l.TotalCount)
}
