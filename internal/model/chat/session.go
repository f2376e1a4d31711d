package chat

import (
	"time"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
)

// Session captures a transient anonymous conversation.
type Session struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	CurrentLevel stress.Level `json:"currentLevel"`
}
