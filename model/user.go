// Package model declares the immutable domain entities of the client and
// their wire schemas. Entities are plain structs with value semantics; the
// only mutation path is the schema's With (copy-with-changes) operation, so
// instances can be shared across goroutines freely.
//
// Wire-key conventions are per field, not global: the User family travels in
// snake_case, everything else in camelCase.
package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// User is the profile entity. It references no other entity.
type User struct {
	ID       string
	Email    string
	Username string

	DisplayName    *string
	Bio            *string
	ProfilePicture *string
	CoverPicture   *string

	FollowersCount int
	FollowingCount int
	PostsCount     int

	IsAdmin  bool
	IsExpert bool

	PlantInterests []string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// UserSchema is the wire schema for User. Keys are snake_case.
var UserSchema = newUserSchema()

func newUserSchema() *wire.Object[User] {
	o := wire.NewObject[User]("User")
	wire.Field(o, "id", codec.String(), func(u *User) *string { return &u.ID }).Required()
	wire.Field(o, "email", codec.String(), func(u *User) *string { return &u.Email }).Required()
	wire.Field(o, "username", codec.String(), func(u *User) *string { return &u.Username }).Required()
	wire.Field(o, "display_name", codec.Ptr(codec.String()), func(u *User) **string { return &u.DisplayName })
	wire.Field(o, "bio", codec.Ptr(codec.String()), func(u *User) **string { return &u.Bio })
	wire.Field(o, "profile_picture", codec.Ptr(codec.String()), func(u *User) **string { return &u.ProfilePicture })
	wire.Field(o, "cover_picture", codec.Ptr(codec.String()), func(u *User) **string { return &u.CoverPicture })
	wire.Field(o, "followers_count", codec.Int(), func(u *User) *int { return &u.FollowersCount }).Default(0)
	wire.Field(o, "following_count", codec.Int(), func(u *User) *int { return &u.FollowingCount }).Default(0)
	wire.Field(o, "posts_count", codec.Int(), func(u *User) *int { return &u.PostsCount }).Default(0)
	wire.Field(o, "is_admin", codec.Bool(), func(u *User) *bool { return &u.IsAdmin }).Default(false)
	wire.Field(o, "is_expert", codec.Bool(), func(u *User) *bool { return &u.IsExpert }).Default(false)
	wire.Field(o, "plant_interests", codec.Seq(codec.String()), func(u *User) *[]string { return &u.PlantInterests }).Default([]string{})
	wire.Field(o, "created_at", codec.Timestamp(), func(u *User) *time.Time { return &u.CreatedAt }).Required()
	wire.Field(o, "updated_at", codec.Ptr(codec.Timestamp()), func(u *User) **time.Time { return &u.UpdatedAt })
	return o
}

// With returns a copy of u with mutate applied; u is unchanged.
func (u User) With(mutate func(*User)) User { return UserSchema.With(u, mutate) }

// DisplayNameOrUsername returns the display name when set, the username
// otherwise.
func (u User) DisplayNameOrUsername() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Username
}

// HasPlantInterest reports whether name is among the user's interests.
func (u User) HasPlantInterest(name string) bool {
	for _, it := range u.PlantInterests {
		if it == name {
			return true
		}
	}
	return false
}
