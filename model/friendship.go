package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// FriendshipStatus is the lifecycle state of a friend request. The constants
// are the fixed wire tokens.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipBlocked  FriendshipStatus = "blocked"
	FriendshipDeclined FriendshipStatus = "declined"
)

// Friendship links two users by id. The embedded snapshots are populated
// only when the source join included them and are independent of the id
// fields.
type Friendship struct {
	ID          string
	RequesterID string
	AddresseeID string
	Status      FriendshipStatus
	Message     *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Requester   *User
	Addressee   *User
}

// FriendshipSchema is the wire schema for Friendship. Keys are camelCase.
var FriendshipSchema = newFriendshipSchema()

func newFriendshipSchema() *wire.Object[Friendship] {
	o := wire.NewObject[Friendship]("Friendship")
	wire.Field(o, "id", codec.String(), func(f *Friendship) *string { return &f.ID }).Required()
	wire.Field(o, "requesterId", codec.String(), func(f *Friendship) *string { return &f.RequesterID }).Required()
	wire.Field(o, "addresseeId", codec.String(), func(f *Friendship) *string { return &f.AddresseeID }).Required()
	wire.Field(o, "status", codec.Enum(FriendshipPending, FriendshipAccepted, FriendshipBlocked, FriendshipDeclined),
		func(f *Friendship) *FriendshipStatus { return &f.Status }).Default(FriendshipPending)
	wire.Field(o, "message", codec.Ptr(codec.String()), func(f *Friendship) **string { return &f.Message })
	wire.Field(o, "createdAt", codec.Timestamp(), func(f *Friendship) *time.Time { return &f.CreatedAt }).Required()
	wire.Field(o, "updatedAt", codec.Ptr(codec.Timestamp()), func(f *Friendship) **time.Time { return &f.UpdatedAt })
	wire.Field(o, "requester", codec.Ptr[User](UserSchema), func(f *Friendship) **User { return &f.Requester })
	wire.Field(o, "addressee", codec.Ptr[User](UserSchema), func(f *Friendship) **User { return &f.Addressee })
	return o
}

// With returns a copy of f with mutate applied; f is unchanged.
func (f Friendship) With(mutate func(*Friendship)) Friendship {
	return FriendshipSchema.With(f, mutate)
}

// IsPending reports whether the request is still awaiting an answer.
func (f Friendship) IsPending() bool { return f.Status == FriendshipPending }

// IsAccepted reports whether the two users are friends.
func (f Friendship) IsAccepted() bool { return f.Status == FriendshipAccepted }

// IsBlocked reports whether either side blocked the other.
func (f Friendship) IsBlocked() bool { return f.Status == FriendshipBlocked }

// Involves reports whether userID is either side of the friendship.
func (f Friendship) Involves(userID string) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

// OtherUserID returns the id of the other side relative to userID, or ""
// when userID is not involved.
func (f Friendship) OtherUserID(userID string) string {
	switch userID {
	case f.RequesterID:
		return f.AddresseeID
	case f.AddresseeID:
		return f.RequesterID
	default:
		return ""
	}
}

// FriendsList is a page of friends as returned by the API.
type FriendsList struct {
	Friends    []User
	TotalCount int
}

// FriendsListSchema is the wire schema for FriendsList.
var FriendsListSchema = newFriendsListSchema()

func newFriendsListSchema() *wire.Object[FriendsList] {
	o := wire.NewObject[FriendsList]("FriendsList")
	wire.Field(o, "friends", codec.Seq[User](UserSchema), func(l *FriendsList) *[]User { return &l.Friends }).Default([]User{})
	wire.Field(o, "totalCount", codec.Int(), func(l *FriendsList) *int { return &l.TotalCount }).Default(0)
	return o
}
