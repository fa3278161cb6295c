package activity

import (
	"fmt"
	"time"

	"github.com/rpggio/hireboard/internal/domain/roster"
)

const (
	firstRecordNumber = 1000
	maxAgeDays        = 7
	dayMillis         = int64(24 * time.Hour / time.Millisecond)
)

// generator synthesizes records from a random source.
type generator struct {
	src    Source
	unread UnreadPolicy
}

func (g generator) record(n int, now time.Time) Record {
	kind := Kinds[g.src.IntN(len(Kinds))]
	person := roster.People[g.src.IntN(len(roster.People))]
	actions := kind.Actions()
	action := actions[g.src.IntN(len(actions))]

	age := time.Duration(g.src.IntN(maxAgeDays))*24*time.Hour +
		time.Duration(g.src.Int64N(dayMillis))*time.Millisecond

	rec := Record{
		ID:            fmt.Sprintf("ACT-%d", firstRecordNumber+n),
		Kind:          kind,
		CandidateName: person.Name,
		Position:      person.Position,
		Description:   g.describe(kind, action, person),
		Timestamp:     now.Add(-age),
	}
	if g.unread == UnreadRandom {
		rec.IsRead = g.src.IntN(2) == 1
	}
	return rec
}

func (g generator) describe(kind Kind, action string, person roster.Person) string {
	switch kind {
	case KindApplication:
		return fmt.Sprintf("Application %s for %s", action, person.Position)
	case KindInterview:
		return fmt.Sprintf("Interview %s with %s", action, person.Name)
	case KindStatus:
		status := roster.Statuses[g.src.IntN(len(roster.Statuses))]
		return fmt.Sprintf("%s %s", action, status)
	case KindNote:
		return fmt.Sprintf("%s on %s's application", action, person.Name)
	case KindEmail:
		return fmt.Sprintf("Email %s to %s", action, person.Name)
	case KindEvaluation:
		score := 50 + g.src.IntN(50)
		return fmt.Sprintf("%s %s (%d/100)", action, person.Name, score)
	}
	return action
}
