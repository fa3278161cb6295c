package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/hireboard/internal/domain/roster"
)

const (
	firstCandidateNumber = 1000
	maxAppliedDaysAgo    = 30
	appliedDateLayout    = "2006-01-02"
)

// Source supplies the randomness used by the generator.
type Source interface {
	IntN(n int) int
}

// Options configures a Board.
type Options struct {
	Source Source
	Now    func() time.Time
	Logger *slog.Logger
}

// Board holds generated candidates bucketed by stage.
type Board struct {
	mu         sync.RWMutex
	candidates []Candidate
	counts     map[Stage]int
	batchID    string

	src    Source
	now    func() time.Time
	logger *slog.Logger
}

// NewBoard creates an empty board.
func NewBoard(opts Options) *Board {
	if opts.Source == nil {
		opts.Source = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Board{
		counts: make(map[Stage]int, len(Stages)),
		src:    opts.Source,
		now:    opts.Now,
		logger: opts.Logger,
	}
}

// Generate replaces the board with count random candidates.
func (b *Board) Generate(count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidArgument, count)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	positions := roster.Positions()
	candidates := make([]Candidate, 0, count)
	counts := make(map[Stage]int, len(Stages))
	for i := 1; i <= count; i++ {
		stage := Stages[b.src.IntN(len(Stages))]
		first := firstName(roster.People[b.src.IntN(len(roster.People))].Name)
		last := lastName(roster.People[b.src.IntN(len(roster.People))].Name)
		applied := now.AddDate(0, 0, -b.src.IntN(maxAppliedDaysAgo))

		candidates = append(candidates, Candidate{
			ID:          fmt.Sprintf("CAN-%d", firstCandidateNumber+i),
			Name:        first + " " + last,
			Position:    positions[b.src.IntN(len(positions))],
			Email:       strings.ToLower(first) + "." + strings.ToLower(last) + "@example.com",
			Phone:       fmt.Sprintf("+1-555-%d-%d", 100+b.src.IntN(900), 1000+b.src.IntN(9000)),
			Score:       50 + b.src.IntN(50),
			Stage:       stage,
			AppliedDate: applied.UTC().Format(appliedDateLayout),
			LastUpdated: now,
		})
		counts[stage]++
	}

	b.candidates = candidates
	b.counts = counts
	b.batchID = uuid.NewString()
	b.logger.Debug("pipeline generated", "batch_id", b.batchID, "count", count)
	return b.batchID, nil
}

func (b *Board) countsLocked() []StageCount {
	out := make([]StageCount, 0, len(Stages))
	for _, s := range Stages {
		out = append(out, StageCount{Stage: s, Count: b.counts[s]})
	}
	return out
}

// Snapshot returns counts for every stage, in stage order, and the candidates
// in generation order, all from the same generation.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		BatchID:    b.batchID,
		Counts:     b.countsLocked(),
		Candidates: slices.Clone(b.candidates),
	}
}

func progress(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return min(100, float64(count)/float64(total)*100)
}

// ProgressOf is the share of the snapshot's candidates that count represents,
// as a percentage capped at 100. An empty snapshot yields 0.
func (s Snapshot) ProgressOf(count int) float64 {
	return progress(count, len(s.Candidates))
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full
	}
	return parts[0]
}

func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "Smith"
	}
	return parts[1]
}
