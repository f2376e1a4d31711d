package chat

import (
	"time"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
)

// Sender identifies who wrote a transcript message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn of the append-only transcript.
type Message struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"sessionId"`
	Text        string       `json:"text"`
	Sender      Sender       `json:"sender"`
	StressLevel stress.Level `json:"stressLevel"`
	CreatedAt   time.Time    `json:"timestamp"`
}
