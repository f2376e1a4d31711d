package chat

// EventType names an event pushed to the client.
type EventType string

const (
	EventTyping   EventType = "typing"
	EventStress   EventType = "stress"
	EventReply    EventType = "reply"
	EventCritical EventType = "critical"
)

// Event is emitted while a submission is processed.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	Data      any       `json:"data,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// TypingState is the payload of EventTyping.
type TypingState struct {
	Typing bool `json:"typing"`
}
