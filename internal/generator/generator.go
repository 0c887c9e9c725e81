// Package generator builds the synthetic demo datasets behind the admin
// dashboard.
//
// Relational fields (a workspace owner, the workspace and creator of an API
// key, and so on) are produced by running the related generator for a single
// record on the same random stream. The embedded record is therefore fresh and
// unrelated to any materialized collection: the same user id "1" shows up with
// different names under different parents. The demo data is not referentially
// consistent.
//
// Generating n flat records costs O(n). Generating n records that embed k
// relational fields costs O(n*k) nested runs, and nested runs recurse (a
// subscription embeds a workspace which embeds its owner).
package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/inaiurai/admindemo/internal/random"
)

// ErrInvalidCount is returned when a negative record count is requested.
var ErrInvalidCount = errors.New("generator: count must not be negative")

// HistoryYears bounds how far back generated creation dates reach.
const HistoryYears = 2

// Generator draws every entity kind from one seeded stream. Output is a pure
// function of (seed, now, call sequence). A Generator is not safe for
// concurrent use.
type Generator struct {
	rnd *random.Provider
	now time.Time
	err error
}

// New returns a Generator seeded with seed. now is the reference instant
// every "past" and "future" date is drawn relative to.
func New(seed uint64, now time.Time) *Generator {
	return &Generator{rnd: random.New(seed), now: now.UTC()}
}

// Now returns the reference instant.
func (g *Generator) Now() time.Time { return g.now }

// Err returns the first error recorded by any draw.
func (g *Generator) Err() error { return g.err }

func checkCount(kind string, count int) error {
	if count < 0 {
		return fmt.Errorf("%s: %d: %w", kind, count, ErrInvalidCount)
	}
	return nil
}

// since is the earliest creation instant.
func (g *Generator) since() time.Time {
	return g.now.AddDate(-HistoryYears, 0, 0)
}

func (g *Generator) date(start, end time.Time) time.Time {
	if g.err != nil {
		return start
	}
	t, err := g.rnd.Date(start, end)
	if err != nil {
		g.err = err
		return start
	}
	return t
}

func (g *Generator) intn(min, max int) int {
	if g.err != nil {
		return min
	}
	v, err := g.rnd.Int(min, max)
	if err != nil {
		g.err = err
		return min
	}
	return v
}

// chance reports true with probability pct/100.
func (g *Generator) chance(pct int) bool {
	return g.intn(1, 100) <= pct
}

func pick[T any](g *Generator, set []T) T {
	var zero T
	if g.err != nil {
		return zero
	}
	v, err := random.Element(g.rnd, set)
	if err != nil {
		g.err = err
		return zero
	}
	return v
}

// subset keeps each member of set with even odds, preserving order. An empty
// draw falls back to fallback.
func subset[T any](g *Generator, set []T, fallback T) []T {
	out := make([]T, 0, len(set))
	for _, v := range set {
		if g.chance(50) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func id(i int) string { return strconv.Itoa(i) }

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases name and collapses every run of other characters to "_".
func Slug(name string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(name), "_"), "_")
}
