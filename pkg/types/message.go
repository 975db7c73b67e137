package types

import "time"

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one turn in a chat transcript.
type Message struct {
	// MessageID is derived from the wall clock at creation time.
	// Two messages created within the same millisecond collide; that is
	// acceptable for a transcript and not safe for durable storage.
	MessageID string `json:"message_id"`

	// Text is the message body.
	Text string `json:"text"`

	// Sender is SenderUser or SenderBot.
	Sender string `json:"sender"`

	// Timestamp is the creation time.
	Timestamp time.Time `json:"timestamp"`

	// Metadata carries optional backend-supplied annotations.
	Metadata map[string]any `json:"metadata,omitempty"`
}
