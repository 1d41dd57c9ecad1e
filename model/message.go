package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageText                MessageType = "text"
	MessageImage               MessageType = "image"
	MessagePlantIdentification MessageType = "plant_identification"
	MessageCareRequest         MessageType = "care_request"
)

// MessageStatus is the delivery state of a message.
type MessageStatus string

const (
	MessageSending   MessageStatus = "sending"
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
	MessageFailed    MessageStatus = "failed"
)

// Message is one chat message between two users. Sender is an optional
// snapshot populated only when the source join included it; Metadata carries
// type-specific payload (identification results, care details) untouched.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	Content    string
	Type       MessageType
	Status     MessageStatus
	CreatedAt  time.Time
	Sender     *User
	Metadata   map[string]any
}

// MessageSchema is the wire schema for Message. Keys are camelCase.
var MessageSchema = newMessageSchema()

func newMessageSchema() *wire.Object[Message] {
	o := wire.NewObject[Message]("Message")
	wire.Field(o, "id", codec.String(), func(m *Message) *string { return &m.ID }).Required()
	wire.Field(o, "senderId", codec.String(), func(m *Message) *string { return &m.SenderID }).Required()
	wire.Field(o, "receiverId", codec.String(), func(m *Message) *string { return &m.ReceiverID }).Required()
	wire.Field(o, "content", codec.String(), func(m *Message) *string { return &m.Content }).Required()
	wire.Field(o, "type", codec.Enum(MessageText, MessageImage, MessagePlantIdentification, MessageCareRequest),
		func(m *Message) *MessageType { return &m.Type }).Default(MessageText)
	wire.Field(o, "status", codec.Enum(MessageSending, MessageSent, MessageDelivered, MessageRead, MessageFailed),
		func(m *Message) *MessageStatus { return &m.Status }).Default(MessageSending)
	wire.Field(o, "createdAt", codec.Timestamp(), func(m *Message) *time.Time { return &m.CreatedAt }).Required()
	wire.Field(o, "sender", codec.Ptr[User](UserSchema), func(m *Message) **User { return &m.Sender })
	wire.Field(o, "metadata", codec.RawMap(), func(m *Message) *map[string]any { return &m.Metadata })
	return o
}

// With returns a copy of m with mutate applied; m is unchanged.
func (m Message) With(mutate func(*Message)) Message { return MessageSchema.With(m, mutate) }

// IsRead reports whether the receiver has read the message.
func (m Message) IsRead() bool { return m.Status == MessageRead }

// IsFailed reports whether sending failed.
func (m Message) IsFailed() bool { return m.Status == MessageFailed }

// IsFrom reports whether userID sent the message.
func (m Message) IsFrom(userID string) bool { return m.SenderID == userID }
