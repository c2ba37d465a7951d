package models

// Alert is a transient reminder derived from schedule items and goals. The
// set is recomputed each evaluation cycle and never persisted; IDs are
// deterministic so repeated evaluations of unchanged state yield the same
// set.
type Alert struct {
	ID          string `json:"id"`
	RelatedID   string `json:"related_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	TriggeredAt int64  `json:"triggered_at"` // epoch milliseconds
}
