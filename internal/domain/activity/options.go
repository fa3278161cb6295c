package activity

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Source supplies the randomness used by the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// NewSource returns a PCG-backed source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UnreadPolicy decides the read state of freshly generated records.
type UnreadPolicy string

const (
	// UnreadAll starts every new record unread.
	UnreadAll UnreadPolicy = "unread"
	// UnreadRandom flips a coin per record.
	UnreadRandom UnreadPolicy = "random"
)

// ParseUnreadPolicy validates a policy name. Empty selects UnreadAll.
func ParseUnreadPolicy(name string) (UnreadPolicy, error) {
	switch UnreadPolicy(name) {
	case "", UnreadAll:
		return UnreadAll, nil
	case UnreadRandom:
		return UnreadRandom, nil
	}
	return "", fmt.Errorf("%w: unknown unread policy %q", ErrInvalidArgument, name)
}

// Options configures a Store.
type Options struct {
	Source Source
	Now    func() time.Time
	Unread UnreadPolicy
	Logger *slog.Logger
}
