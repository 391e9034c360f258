// Package queue defines message payloads exchanged over the message broker.
package queue

// ThesisSubmittedEvent is published after a submission transaction commits.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database. Nothing is published for rolled
// back submissions.
type ThesisSubmittedEvent struct {
	ThesisNo       uint64   `json:"thesis_no"`
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	Type           string   `json:"type"`
	AuthorID       uint64   `json:"author_id"`
	AuthorName     string   `json:"author_name"`
	SupervisorID   uint64   `json:"supervisor_id"`
	InstituteID    uint64   `json:"institute_id"`
	Keywords       []string `json:"keywords"`
	SubmittedAt    string   `json:"submitted_at"`
	SubmittedByUID uint64   `json:"submitted_by_user_id"`
}
