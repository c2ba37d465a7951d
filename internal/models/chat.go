package models

// ChatMessage is one line of the assistant conversation. The log is
// append-only.
type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	FromBot   bool   `json:"from_bot"`
	CreatedAt int64  `json:"created_at"` // epoch milliseconds
}
