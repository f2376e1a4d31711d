package chat

// Role is the speaker of a model context entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// HistoryCapacity is the number of turns kept as model context.
const HistoryCapacity = 10

// HistoryEntry is one turn of model context.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is a fixed-capacity FIFO of model context entries.
// It is not safe for concurrent use; the owning session serializes access.
type History struct {
	entries []HistoryEntry
	start   int
	size    int
}

// NewHistory returns a buffer holding at most capacity entries.
// A non-positive capacity falls back to HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &History{entries: make([]HistoryEntry, capacity)}
}

// Append adds an entry, evicting the oldest one when full.
func (h *History) Append(role Role, content string) {
	capacity := len(h.entries)
	if h.size < capacity {
		h.entries[(h.start+h.size)%capacity] = HistoryEntry{Role: role, Content: content}
		h.size++
		return
	}
	h.entries[h.start] = HistoryEntry{Role: role, Content: content}
	h.start = (h.start + 1) % capacity
}

// Entries returns the buffered entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.entries[(h.start+i)%len(h.entries)])
	}
	return out
}

// Len returns the number of buffered entries.
func (h *History) Len() int {
	return h.size
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.entries)
}

// Reset drops every entry.
func (h *History) Reset() {
	for i := range h.entries {
		h.entries[i] = HistoryEntry{}
	}
	h.start = 0
	h.size = 0
}
