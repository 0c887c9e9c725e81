package random

import (
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestInt_InclusiveBounds(t *testing.T) {
	p := New(7)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v, err := p.Int(1, 3)
		if err != nil {
			t.Fatalf("Int: %v", err)
		}
		if v < 1 || v > 3 {
			t.Fatalf("value %d outside [1, 3]", v)
		}
		seenMin = seenMin || v == 1
		seenMax = seenMax || v == 3
	}
	if !seenMin || !seenMax {
		t.Errorf("bounds never drawn: min=%v max=%v", seenMin, seenMax)
	}
}

func TestInt_InvalidRange(t *testing.T) {
	_, err := New(1).Int(5, 4)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestDate_InvalidRange(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := New(1).Date(now, now.Add(-time.Second))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestDate_EmptySpan(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := New(1).Date(now, now)
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if !got.Equal(now) {
		t.Errorf("expected %s, got %s", now, got)
	}
}

func TestElement_EmptySet(t *testing.T) {
	_, err := Element(New(1), []string{})
	if !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		x, _ := a.Int(0, 1_000_000)
		y, _ := b.Int(0, 1_000_000)
		if x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
	ba, bb := make([]byte, 37), make([]byte, 37)
	_, _ = a.Read(ba)
	_, _ = b.Read(bb)
	if string(ba) != string(bb) {
		t.Fatal("byte streams diverged")
	}
}

func TestProperty_DateWithinRange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	properties.Property("Date stays inside [start, end]", prop.ForAll(
		func(seed uint64, startMs, spanMs int64) bool {
			start := base.Add(time.Duration(startMs) * time.Millisecond)
			end := start.Add(time.Duration(spanMs) * time.Millisecond)
			got, err := New(seed).Date(start, end)
			if err != nil {
				return false
			}
			return !got.Before(start) && !got.After(end)
		},
		gen.UInt64(),
		gen.Int64Range(0, 1_000_000_000),
		gen.Int64Range(0, 1_000_000_000),
	))

	properties.Property("Int stays inside [min, max]", prop.ForAll(
		func(seed uint64, min, width int) bool {
			v, err := New(seed).Int(min, min+width)
			return err == nil && v >= min && v <= min+width
		},
		gen.UInt64(),
		gen.IntRange(-10_000, 10_000),
		gen.IntRange(0, 10_000),
	))

	properties.TestingRun(t)
}
