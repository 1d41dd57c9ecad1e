package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// StoryType is the content kind of a story.
type StoryType string

const (
	StoryPhoto               StoryType = "photo"
	StoryVideo               StoryType = "video"
	StoryPlantProgress       StoryType = "plant_progress"
	StoryPlantIdentification StoryType = "plant_identification"
)

// StoryPrivacy is the audience of a story.
type StoryPrivacy string

const (
	StoryPublic       StoryPrivacy = "public"
	StoryFriends      StoryPrivacy = "friends"
	StoryCloseFriends StoryPrivacy = "close_friends"
	StoryPrivate      StoryPrivacy = "private"
)

// Story is an ephemeral post with tags and an optional author snapshot.
type Story struct {
	ID         string
	UserID     string
	Type       StoryType
	Privacy    StoryPrivacy
	Caption    *string
	MediaURL   *string
	Tags       []string
	User       *User
	ViewsCount int
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}

// StorySchema is the wire schema for Story. Keys are camelCase.
var StorySchema = newStorySchema()

func newStorySchema() *wire.Object[Story] {
	o := wire.NewObject[Story]("Story")
	wire.Field(o, "id", codec.String(), func(s *Story) *string { return &s.ID }).Required()
	wire.Field(o, "userId", codec.String(), func(s *Story) *string { return &s.UserID }).Required()
	wire.Field(o, "type", codec.Enum(StoryPhoto, StoryVideo, StoryPlantProgress, StoryPlantIdentification),
		func(s *Story) *StoryType { return &s.Type }).Required()
	wire.Field(o, "privacyLevel", codec.Enum(StoryPublic, StoryFriends, StoryCloseFriends, StoryPrivate),
		func(s *Story) *StoryPrivacy { return &s.Privacy }).Default(StoryPublic)
	wire.Field(o, "caption", codec.Ptr(codec.String()), func(s *Story) **string { return &s.Caption })
	wire.Field(o, "mediaUrl", codec.Ptr(codec.String()), func(s *Story) **string { return &s.MediaURL })
	wire.Field(o, "tags", codec.Seq(codec.String()), func(s *Story) *[]string { return &s.Tags }).Default([]string{})
	wire.Field(o, "user", codec.Ptr[User](UserSchema), func(s *Story) **User { return &s.User })
	wire.Field(o, "viewsCount", codec.Int(), func(s *Story) *int { return &s.ViewsCount }).Default(0)
	wire.Field(o, "createdAt", codec.Timestamp(), func(s *Story) *time.Time { return &s.CreatedAt }).Required()
	wire.Field(o, "expiresAt", codec.Ptr(codec.Timestamp()), func(s *Story) **time.Time { return &s.ExpiresAt })
	return o
}

// With returns a copy of s with mutate applied; s is unchanged.
func (s Story) With(mutate func(*Story)) Story { return StorySchema.With(s, mutate) }

// IsExpired reports whether the story has lapsed at now. Stories with no
// expiry never expire.
func (s Story) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// HasTag reports whether tag is on the story.
func (s Story) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// StoryComment is a comment on a story. Replies nest recursively through the
// same schema; decode depth is capped by the engine so adversarial nesting
// fails with excessive_nesting_depth instead of exhausting the stack.
type StoryComment struct {
	ID        string
	StoryID   string
	UserID    string
	Content   string
	CreatedAt time.Time
	User      *User
	Replies   []StoryComment
}

// StoryCommentSchema is the wire schema for StoryComment. The recursive
// replies field is attached in init because the schema refers to itself.
var StoryCommentSchema = newStoryCommentSchema()

func newStoryCommentSchema() *wire.Object[StoryComment] {
	o := wire.NewObject[StoryComment]("StoryComment")
	wire.Field(o, "id", codec.String(), func(c *StoryComment) *string { return &c.ID }).Required()
	wire.Field(o, "storyId", codec.String(), func(c *StoryComment) *string { return &c.StoryID }).Required()
	wire.Field(o, "userId", codec.String(), func(c *StoryComment) *string { return &c.UserID }).Required()
	wire.Field(o, "content", codec.String(), func(c *StoryComment) *string { return &c.Content }).Required()
	wire.Field(o, "createdAt", codec.Timestamp(), func(c *StoryComment) *time.Time { return &c.CreatedAt }).Required()
	wire.Field(o, "user", codec.Ptr[User](UserSchema), func(c *StoryComment) **User { return &c.User })
	return o
}

func init() {
	wire.Field(StoryCommentSchema, "replies", codec.Seq[StoryComment](StoryCommentSchema),
		func(c *StoryComment) *[]StoryComment { return &c.Replies }).Default([]StoryComment{})
}

// With returns a copy of c with mutate applied; c is unchanged.
func (c StoryComment) With(mutate func(*StoryComment)) StoryComment {
	return StoryCommentSchema.With(c, mutate)
}

// ReplyCount returns the number of direct replies.
func (c StoryComment) ReplyCount() int { return len(c.Replies) }

// TotalReplies returns the number of replies in the whole subtree.
func (c StoryComment) TotalReplies() int {
	n := len(c.Replies)
	for i := range c.Replies {
		n += c.Replies[i].TotalReplies()
	}
	return n
}
