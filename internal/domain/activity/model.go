package activity

import (
	"fmt"
	"time"
)

// Kind is the closed set of activity variants shown in the feed.
type Kind string

const (
	KindApplication Kind = "application"
	KindInterview   Kind = "interview"
	KindStatus      Kind = "status"
	KindNote        Kind = "note"
	KindEmail       Kind = "email"
	KindEvaluation  Kind = "evaluation"
)

// Kinds lists every variant in display order.
var Kinds = []Kind{
	KindApplication,
	KindInterview,
	KindStatus,
	KindNote,
	KindEmail,
	KindEvaluation,
}

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown activity type %q", ErrInvalidArgument, name)
	}
	return k, nil
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	switch k {
	case KindApplication, KindInterview, KindStatus, KindNote, KindEmail, KindEvaluation:
		return true
	}
	return false
}

// Icon is the Font Awesome icon class for the variant.
func (k Kind) Icon() string {
	switch k {
	case KindApplication:
		return "fa-file-alt"
	case KindInterview:
		return "fa-video"
	case KindStatus:
		return "fa-exchange-alt"
	case KindNote:
		return "fa-sticky-note"
	case KindEmail:
		return "fa-envelope"
	case KindEvaluation:
		return "fa-star"
	}
	return "fa-circle"
}

// Color is the Bootstrap contextual color for the variant.
func (k Kind) Color() string {
	switch k {
	case KindApplication:
		return "primary"
	case KindInterview:
		return "info"
	case KindStatus, KindEvaluation:
		return "warning"
	case KindNote:
		return "success"
	case KindEmail:
		return "danger"
	}
	return "secondary"
}

// Actions returns the verbs a description of this variant may use.
func (k Kind) Actions() []string {
	switch k {
	case KindApplication:
		return []string{"submitted", "reviewed", "shortlisted", "rejected"}
	case KindInterview:
		return []string{"scheduled", "completed", "rescheduled", "cancelled"}
	case KindStatus:
		return []string{"status updated to", "moved to", "advanced to"}
	case KindNote:
		return []string{"added a note", "updated a note", "commented"}
	case KindEmail:
		return []string{"sent", "received", "replied to"}
	case KindEvaluation:
		return []string{"evaluated", "scored", "rated"}
	}
	return nil
}

// Record is one logged event in a candidate's history.
type Record struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"type"`
	CandidateName string    `json:"candidate"`
	Position      string    `json:"position"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
	IsRead        bool      `json:"is_read"`
}

// Batch identifies one generated collection.
type Batch struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Size        int       `json:"size"`
	// Unread is the unread count right after generation.
	Unread int `json:"unread"`
}

// View is a consistent read of the feed: a prefix of the records plus the
// totals of the whole feed at the same instant.
type View struct {
	Batch   Batch
	Records []Record
	Total   int
	Unread  int
}
