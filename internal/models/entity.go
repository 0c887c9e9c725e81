package models

import (
	"errors"
	"time"
)

// Entity is any record a store can hold. IDs are not unique by contract:
// stores preserve duplicates created by callers. Clone returns a copy that
// shares no slices or pointers with the receiver.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// Patch is a shallow update addressed to the record with PatchID.
// Apply copies every field the patch carries onto the target and leaves the rest untouched.
// Slice and pointer values are copied, so one patch can be applied to several targets.
type Patch[T any] interface {
	PatchID() string
	Apply(target *T)
}

var (
	// ErrInvalidEnum is returned by Validate when a field holds a value outside its closed set.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrInvariant is returned by Validate when a cross-field rule is broken.
	ErrInvariant = errors.New("invariant violated")
)

// Nullable is a patch slot for a field that may be null. Set marks the slot as
// carried by the patch; a nil Value then clears the field.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some returns a slot that sets the field to v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a slot that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n Nullable[T]) applyTo(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

func set[T any](src *T, dst *T) {
	if src != nil {
		*dst = *src
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// notBefore reports whether t is nil or not earlier than ref.
func notBefore(t *time.Time, ref time.Time) bool {
	return t == nil || !t.Before(ref)
}
