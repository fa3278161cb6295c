package pipeline

import "time"

// Candidate is a placeholder applicant on the board.
type Candidate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Score       int       `json:"score"`
	Stage       Stage     `json:"status"`
	AppliedDate string    `json:"applied_date"`
	LastUpdated time.Time `json:"last_updated"`
}

// StageCount is the number of candidates in one stage.
type StageCount struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
}

// Snapshot is a consistent view of the board.
type Snapshot struct {
	BatchID    string       `json:"batch_id"`
	Counts     []StageCount `json:"counts"`
	Candidates []Candidate  `json:"candidates"`
}
