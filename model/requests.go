package model

import (
	"github.com/google/uuid"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// UpdateUserRequest is a partial profile update. Every field is tri-state:
// absent leaves the server value unchanged, explicit null clears it, a value
// replaces it. Encode renders absent as a missing key and null as a JSON
// null, so the distinction survives the wire.
type UpdateUserRequest struct {
	DisplayName    wire.Opt[string]
	Bio            wire.Opt[string]
	ProfilePicture wire.Opt[string]
	PlantInterests wire.Opt[[]string]
}

// UpdateUserRequestSchema is the wire schema for UpdateUserRequest. Keys are
// snake_case like the rest of the User family.
var UpdateUserRequestSchema = newUpdateUserRequestSchema()

func newUpdateUserRequestSchema() *wire.Object[UpdateUserRequest] {
	o := wire.NewObject[UpdateUserRequest]("UpdateUserRequest")
	wire.Field(o, "display_name", codec.OptOf(codec.String()),
		func(r *UpdateUserRequest) *wire.Opt[string] { return &r.DisplayName })
	wire.Field(o, "bio", codec.OptOf(codec.String()),
		func(r *UpdateUserRequest) *wire.Opt[string] { return &r.Bio })
	wire.Field(o, "profile_picture", codec.OptOf(codec.String()),
		func(r *UpdateUserRequest) *wire.Opt[string] { return &r.ProfilePicture })
	wire.Field(o, "plant_interests", codec.OptOf(codec.Seq(codec.String())),
		func(r *UpdateUserRequest) *wire.Opt[[]string] { return &r.PlantInterests })
	return o
}

// IsEmpty reports whether the request would change nothing.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.DisplayName.IsAbsent() && r.Bio.IsAbsent() &&
		r.ProfilePicture.IsAbsent() && r.PlantInterests.IsAbsent()
}

// SendMessageRequest is the body for sending a message. ClientRef is a
// client-generated idempotency key so retries do not duplicate messages.
type SendMessageRequest struct {
	ClientRef  string
	ReceiverID string
	Content    string
	Type       MessageType
	Metadata   map[string]any
}

// SendMessageRequestSchema is the wire schema for SendMessageRequest.
var SendMessageRequestSchema = newSendMessageRequestSchema()

func newSendMessageRequestSchema() *wire.Object[SendMessageRequest] {
	o := wire.NewObject[SendMessageRequest]("SendMessageRequest")
	wire.Field(o, "clientRef", codec.String(), func(r *SendMessageRequest) *string { return &r.ClientRef }).Required()
	wire.Field(o, "receiverId", codec.String(), func(r *SendMessageRequest) *string { return &r.ReceiverID }).Required()
	wire.Field(o, "content", codec.String(), func(r *SendMessageRequest) *string { return &r.Content }).Required()
	wire.Field(o, "type", codec.Enum(MessageText, MessageImage, MessagePlantIdentification, MessageCareRequest),
		func(r *SendMessageRequest) *MessageType { return &r.Type }).Default(MessageText)
	wire.Field(o, "metadata", codec.RawMap(), func(r *SendMessageRequest) *map[string]any { return &r.Metadata })
	return o
}

// NewSendMessageRequest builds a text message request with a fresh client
// ref; optional fields keep their defaults.
func NewSendMessageRequest(receiverID, content string) SendMessageRequest {
	return SendMessageRequest{
		ClientRef:  uuid.NewString(),
		ReceiverID: receiverID,
		Content:    content,
		Type:       MessageText,
	}
}
