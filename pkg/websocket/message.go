package websocket

import "time"

// Envelope wraps every outbound message. Type tells the page script what
// Payload holds.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewEnvelope(messageType string, payload interface{}) Envelope {
	return Envelope{Type: messageType, Payload: payload, Timestamp: time.Now().UTC()}
}
