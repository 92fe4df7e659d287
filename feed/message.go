package feed

import "encoding/json"

// MessageType discriminates feed frames.
type MessageType string

const (
	// MessageSnapshot carries the complete state of one source, sent
	// when a client connects or a source is published.
	MessageSnapshot MessageType = "snapshot"

	// MessageUpdate carries the complete state of a source after a
	// change.
	MessageUpdate MessageType = "update"

	// MessagePing keeps idle connections alive.
	MessagePing MessageType = "ping"
)

// Message is one feed frame. Data holds the source's JSON-encoded
// state; Seq counts changes per source, starting at 1 for the state a
// source was published with.
type Message struct {
	Type MessageType     `json:"type"`
	Name string          `json:"name,omitempty"`
	Seq  uint64          `json:"seq,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

var pingPayload = []byte(`{"type":"ping"}`)
