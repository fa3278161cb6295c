package activity

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the activity feed: an in-memory collection kept newest first.
type Store struct {
	mu      sync.RWMutex
	records []Record
	batch   Batch

	gen    generator
	now    func() time.Time
	logger *slog.Logger
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.Source == nil {
		opts.Source = NewSource(0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Unread == "" {
		opts.Unread = UnreadAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		gen:    generator{src: opts.Source, unread: opts.Unread},
		now:    opts.Now,
		logger: opts.Logger,
	}
}

// Generate replaces the collection with count freshly synthesized records.
func (s *Store) Generate(count int) (Batch, error) {
	if count < 0 {
		return Batch{}, fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidArgument, count)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, s.gen.record(i, now))
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	s.records = records
	s.batch = Batch{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Size:        count,
		Unread:      s.unreadLocked(),
	}
	s.logger.Debug("activity feed generated", "batch_id", s.batch.ID, "count", count)
	return s.batch, nil
}

// Recent returns the first limit records, or all of them if there are fewer.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(limit, len(s.records))
	return slices.Clone(s.records[:n]), nil
}

// All returns the full collection in feed order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// MarkAllRead marks every record read and reports how many were unread.
func (s *Store) MarkAllRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for i := range s.records {
		if !s.records[i].IsRead {
			s.records[i].IsRead = true
			marked++
		}
	}
	s.logger.Debug("activity feed marked read", "batch_id", s.batch.ID, "marked", marked)
	return marked
}

// UnreadCount returns the number of unread records.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	n := 0
	for _, rec := range s.records {
		if !rec.IsRead {
			n++
		}
	}
	return n
}

// Batch describes the current collection. It is zero before the first Generate.
func (s *Store) Batch() Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch
}

// View returns the first limit records together with the feed totals, all
// read under one lock so the records, counts and batch agree.
func (s *Store) View(limit int) (View, error) {
	if limit < 0 {
		return View{}, fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked(min(limit, len(s.records))), nil
}

// ViewAll is View over the whole feed.
func (s *Store) ViewAll() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked(len(s.records))
}

func (s *Store) viewLocked(n int) View {
	return View{
		Batch:   s.batch,
		Records: slices.Clone(s.records[:n]),
		Total:   len(s.records),
		Unread:  s.unreadLocked(),
	}
}
