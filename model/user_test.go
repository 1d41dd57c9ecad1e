package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafbook/leafbook-go/model"
	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wirejson"
)

func decodeUser(t *testing.T, src string) model.User {
	t.Helper()
	raw, err := wirejson.Unmarshal([]byte(src))
	require.NoError(t, err)
	u, err := wire.Decode[model.User](context.Background(), model.UserSchema, raw)
	require.NoError(t, err)
	return u
}

func TestUser_SnakeCaseKeysAndDefaults(t *testing.T) {
	u := decodeUser(t, `{
		"id": "u1",
		"email": "a@example.com",
		"username": "ann",
		"created_at": "2023-05-01T00:00:00Z"
	}`)
	assert.Equal(t, 0, u.FollowersCount)
	assert.False(t, u.IsAdmin)
	assert.False(t, u.IsExpert)
	assert.NotNil(t, u.PlantInterests)
	assert.Len(t, u.PlantInterests, 0)
	assert.Nil(t, u.DisplayName)
	assert.Nil(t, u.UpdatedAt)
}

func TestUser_UnknownKeysIgnored(t *testing.T) {
	u := decodeUser(t, `{
		"id": "u1",
		"email": "a@example.com",
		"username": "ann",
		"created_at": "2023-05-01T00:00:00Z",
		"some_server_extra": {"deep": [1, 2, 3]}
	}`)
	assert.Equal(t, "u1", u.ID)
}

func TestUser_MissingRequiredAggregated(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{"username": "ann"}`))
	require.NoError(t, err)
	_, err = wire.Decode[model.User](context.Background(), model.UserSchema, raw)
	require.Error(t, err)
	iss, _ := wire.AsIssues(err)
	paths := make([]string, 0, len(iss))
	for _, it := range iss {
		assert.Equal(t, wire.CodeMissingRequired, it.Code)
		paths = append(paths, it.Path)
	}
	assert.ElementsMatch(t, []string{"/id", "/email", "/created_at"}, paths)
}

func TestUser_RoundTrip(t *testing.T) {
	u := decodeUser(t, `{
		"id": "u1",
		"email": "a@example.com",
		"username": "ann",
		"display_name": "Ann",
		"followers_count": 12,
		"is_expert": true,
		"plant_interests": ["monstera", "ferns"],
		"created_at": "2023-05-01T00:00:00Z",
		"updated_at": "2024-02-01T10:30:00Z"
	}`)

	b, err := wirejson.Marshal(model.UserSchema, u)
	require.NoError(t, err)
	raw, err := wirejson.Unmarshal(b)
	require.NoError(t, err)
	back, err := wire.Decode[model.User](context.Background(), model.UserSchema, raw)
	require.NoError(t, err)
	assert.True(t, model.UserSchema.Equal(u, back))
}

func TestUser_WithKeepsOriginal(t *testing.T) {
	u := decodeUser(t, `{
		"id": "u1",
		"email": "a@example.com",
		"username": "ann",
		"plant_interests": ["monstera"],
		"created_at": "2023-05-01T00:00:00Z"
	}`)

	v := u.With(func(c *model.User) {
		c.Username = "ann2"
		c.PlantInterests = append(c.PlantInterests, "ferns")
	})
	assert.Equal(t, "ann", u.Username)
	assert.Equal(t, []string{"monstera"}, u.PlantInterests)
	assert.Equal(t, "ann2", v.Username)
	assert.True(t, v.HasPlantInterest("ferns"))
}

func TestUser_DisplayNameOrUsername(t *testing.T) {
	u := model.User{Username: "ann"}
	assert.Equal(t, "ann", u.DisplayNameOrUsername())

	dn := "Ann"
	u.DisplayName = &dn
	assert.Equal(t, "Ann", u.DisplayNameOrUsername())

	empty := ""
	u.DisplayName = &empty
	assert.Equal(t, "ann", u.DisplayNameOrUsername())
}
