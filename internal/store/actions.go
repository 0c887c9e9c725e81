package store

import (
	"errors"
	"fmt"

	"github.com/inaiurai/admindemo/internal/models"
)

// ActionKind names a store mutation; it is also the metrics label.
type ActionKind string

const (
	KindFetchStart    ActionKind = "fetch_start"
	KindFetchSuccess  ActionKind = "fetch_success"
	KindFetchFailure  ActionKind = "fetch_failure"
	KindSelect        ActionKind = "select"
	KindUpdateFilters ActionKind = "update_filters"
	KindCreate        ActionKind = "create"
	KindUpdate        ActionKind = "update"
	KindDelete        ActionKind = "delete"
)

// ErrUnknownAction is returned by Dispatch for an action it cannot route,
// typically a variant instantiated for another entity type.
var ErrUnknownAction = errors.New("store: unknown action")

// Action is one of the variants below.
type Action interface {
	Kind() ActionKind
}

type FetchStart struct{}

type FetchSuccess[T any] struct {
	Records []T
}

type FetchFailure struct {
	Err error
}

// Select sets the selection; a nil Entity clears it.
type Select[T any] struct {
	Entity *T
}

type UpdateFilters struct {
	Patch map[string]string
}

type Create[T any] struct {
	Entity T
}

type Update[T any] struct {
	Patch models.Patch[T]
}

type Delete struct {
	ID string
}

func (FetchStart) Kind() ActionKind      { return KindFetchStart }
func (FetchSuccess[T]) Kind() ActionKind { return KindFetchSuccess }
func (FetchFailure) Kind() ActionKind    { return KindFetchFailure }
func (Select[T]) Kind() ActionKind       { return KindSelect }
func (UpdateFilters) Kind() ActionKind   { return KindUpdateFilters }
func (Create[T]) Kind() ActionKind       { return KindCreate }
func (Update[T]) Kind() ActionKind       { return KindUpdate }
func (Delete) Kind() ActionKind          { return KindDelete }

// Dispatch routes a to the matching operation.
func (s *Store[T]) Dispatch(a Action) error {
	switch a := a.(type) {
	case FetchStart:
		s.FetchStart()
	case FetchSuccess[T]:
		s.FetchSuccess(a.Records)
	case FetchFailure:
		s.FetchFailure(a.Err)
	case Select[T]:
		s.Select(a.Entity)
	case UpdateFilters:
		s.UpdateFilters(a.Patch)
	case Create[T]:
		s.Create(a.Entity)
	case Update[T]:
		if a.Patch == nil {
			return fmt.Errorf("%w: update without patch", ErrUnknownAction)
		}
		s.Update(a.Patch)
	case Delete:
		s.Delete(a.ID)
	default:
		return fmt.Errorf("%w: %T on %s store", ErrUnknownAction, a, s.name)
	}
	return nil
}
