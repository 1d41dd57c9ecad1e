package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// Conversation is the inbox row for a chat with one other user. It nests two
// levels: lastMessage may itself embed a sender snapshot.
type Conversation struct {
	ID          string
	OtherUser   *User
	LastMessage *Message
	UnreadCount int
	UpdatedAt   *time.Time
}

// ConversationSchema is the wire schema for Conversation. Keys are camelCase.
var ConversationSchema = newConversationSchema()

func newConversationSchema() *wire.Object[Conversation] {
	o := wire.NewObject[Conversation]("Conversation")
	wire.Field(o, "id", codec.String(), func(c *Conversation) *string { return &c.ID }).Required()
	wire.Field(o, "otherUser", codec.Ptr[User](UserSchema), func(c *Conversation) **User { return &c.OtherUser })
	wire.Field(o, "lastMessage", codec.Ptr[Message](MessageSchema), func(c *Conversation) **Message { return &c.LastMessage })
	wire.Field(o, "unreadCount", codec.Int(), func(c *Conversation) *int { return &c.UnreadCount }).Default(0)
	wire.Field(o, "updatedAt", codec.Ptr(codec.Timestamp()), func(c *Conversation) **time.Time { return &c.UpdatedAt })
	return o
}

// With returns a copy of c with mutate applied; c is unchanged.
func (c Conversation) With(mutate func(*Conversation)) Conversation {
	return ConversationSchema.With(c, mutate)
}

// HasUnread reports whether any message is still unread.
func (c Conversation) HasUnread() bool { return c.UnreadCount > 0 }

// Preview returns the last message content, or "" for an empty conversation.
func (c Conversation) Preview() string {
	if c.LastMessage == nil {
		return ""
	}
	return c.LastMessage.Content
}
