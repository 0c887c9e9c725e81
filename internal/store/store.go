// Package store holds one entity kind's records together with its loading
// flag, last error, selection and filter configuration. Stores are the only
// mutation surface for dashboard data.
package store

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/inaiurai/admindemo/internal/filter"
	"github.com/inaiurai/admindemo/internal/models"
)

// Observer is notified after every completed action.
type Observer interface {
	ObserveAction(store string, kind ActionKind, records int)
}

type options struct {
	log *slog.Logger
	obs Observer
}

type Option func(*options)

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.obs = obs }
}

// State is a copy of a store's read model.
type State[T any] struct {
	Records  []T
	Loading  bool
	Err      error
	Selected *T
	Filters  map[string]string
}

// Store is safe for concurrent use. Every operation runs in a single
// critical section, so the two merges performed by Update are observed
// together.
type Store[T models.Entity[T]] struct {
	name string
	log  *slog.Logger
	obs  Observer

	mu       sync.Mutex
	records  []T
	loading  bool
	err      error
	selected *T
	filters  map[string]string
}

// New returns a store named name seeded with records and filters. Both are
// copied.
func New[T models.Entity[T]](name string, records []T, filters map[string]string, opts ...Option) *Store[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if filters == nil {
		filters = map[string]string{}
	}
	return &Store[T]{
		name:    name,
		log:     o.log.With("store", name),
		obs:     o.obs,
		records: cloneAll(records),
		filters: maps.Clone(filters),
	}
}

func (s *Store[T]) Name() string { return s.name }

// done must be called with mu held.
func (s *Store[T]) done(kind ActionKind) {
	if s.obs != nil {
		s.obs.ObserveAction(s.name, kind, len(s.records))
	}
}

func (s *Store[T]) FetchStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	s.done(KindFetchStart)
}

// FetchSuccess replaces the records verbatim.
func (s *Store[T]) FetchSuccess(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.records = cloneAll(records)
	s.done(KindFetchSuccess)
}

// FetchFailure records err as the store's error. Records are kept and no
// retry is attempted.
func (s *Store[T]) FetchFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	s.log.Warn("fetch failed", "error", err)
	s.done(KindFetchFailure)
}

// Load runs loader between FetchStart and FetchSuccess or FetchFailure.
func (s *Store[T]) Load(loader func() ([]T, error)) error {
	s.FetchStart()
	records, err := loader()
	if err != nil {
		s.FetchFailure(err)
		return err
	}
	s.FetchSuccess(records)
	return nil
}

// Select stores a copy of entity as the selection. nil clears it.
func (s *Store[T]) Select(entity *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entity == nil {
		s.selected = nil
	} else {
		cp := (*entity).Clone()
		s.selected = &cp
	}
	s.done(KindSelect)
}

// UpdateFilters merges patch into the filter configuration. Keys missing
// from patch keep their value; unknown keys are stored as given.
func (s *Store[T]) UpdateFilters(patch map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.filters, patch)
	s.done(KindUpdateFilters)
}

// Create appends entity. IDs are not checked for uniqueness.
func (s *Store[T]) Create(entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, entity.Clone())
	s.done(KindCreate)
}

// Update applies patch to the first record with the patch's id and, as a
// separate merge, to the selection when it has the same id. It reports
// whether a record matched; a missing id is a no-op and is not observed.
func (s *Store[T]) Update(patch models.Patch[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := patch.PatchID()
	i := slices.IndexFunc(s.records, func(r T) bool { return r.EntityID() == id })
	if i < 0 {
		s.log.Debug("update: no such record", "id", id)
		return false
	}
	patch.Apply(&s.records[i])
	if s.selected != nil && (*s.selected).EntityID() == id {
		patch.Apply(s.selected)
	}
	s.done(KindUpdate)
	return true
}

// Delete removes every record with id and clears a matching selection. It
// returns the number of records removed. An id matching neither a record nor
// the selection is a no-op and is not observed.
func (s *Store[T]) Delete(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.records)
	s.records = slices.DeleteFunc(s.records, func(r T) bool { return r.EntityID() == id })
	cleared := s.selected != nil && (*s.selected).EntityID() == id
	if cleared {
		s.selected = nil
	}
	removed := before - len(s.records)
	if removed == 0 && !cleared {
		s.log.Debug("delete: no such record", "id", id)
		return 0
	}
	s.done(KindDelete)
	return removed
}

// Find returns a copy of the first record with id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.EntityID() == id {
			return r.Clone(), true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State[T]{
		Records:  cloneAll(s.records),
		Loading:  s.loading,
		Err:      s.err,
		Selected: s.selectedCopy(),
		Filters:  maps.Clone(s.filters),
	}
}

func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.records)
}

func (s *Store[T]) Selected() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCopy()
}

func (s *Store[T]) Filters() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.filters)
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Visible returns the records passing the current filters under spec.
// It is recomputed on every call.
func (s *Store[T]) Visible(spec filter.Spec[T]) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(filter.Apply(s.records, s.filters, spec))
}

func (s *Store[T]) selectedCopy() *T {
	if s.selected == nil {
		return nil
	}
	cp := (*s.selected).Clone()
	return &cp
}

// cloneAll deep-copies records. A nil slice stays nil.
func cloneAll[T models.Entity[T]](records []T) []T {
	if records == nil {
		return nil
	}
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
