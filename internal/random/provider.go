// Package random provides the seeded primitives every generator draws from.
package random

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	// ErrEmptySet is returned when picking from an empty candidate set.
	ErrEmptySet = errors.New("random: empty set")
	// ErrInvalidRange is returned when the upper bound is below the lower bound.
	ErrInvalidRange = errors.New("random: invalid range")
)

// Provider is a deterministic source of uniform values. Two providers built
// from the same seed yield the same sequence. A Provider is not safe for
// concurrent use.
type Provider struct {
	rng *rand.Rand
}

// New returns a Provider seeded with seed.
func New(seed uint64) *Provider {
	return &Provider{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Date returns an instant uniformly distributed in [start, end] at
// millisecond resolution.
func (p *Provider) Date(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("%w: date %s after %s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	span := end.Sub(start).Milliseconds()
	offset := p.rng.Int64N(span + 1)
	return start.Add(time.Duration(offset) * time.Millisecond), nil
}

// Int returns an integer uniformly distributed in [min, max].
func (p *Provider) Int(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: int %d > %d", ErrInvalidRange, min, max)
	}
	return min + p.rng.IntN(max-min+1), nil
}

// Read fills b from the provider's stream so byte material (key tokens,
// UUIDs) is reproducible alongside every other draw. It never fails.
func (p *Provider) Read(b []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(b) {
		binary.LittleEndian.PutUint64(buf[:], p.rng.Uint64())
		n += copy(b[n:], buf[:])
	}
	return len(b), nil
}

// Element returns one member of set chosen uniformly.
func Element[T any](p *Provider, set []T) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, ErrEmptySet
	}
	i, err := p.Int(0, len(set)-1)
	if err != nil {
		return zero, err
	}
	return set[i], nil
}
