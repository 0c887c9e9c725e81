// Package dashboard wires generators, contract validation, metrics and one
// store per entity kind into an owned value. Nothing here is process-wide.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inaiurai/admindemo/internal/config"
	"github.com/inaiurai/admindemo/internal/generator"
	"github.com/inaiurai/admindemo/internal/models"
	"github.com/inaiurai/admindemo/internal/services"
	"github.com/inaiurai/admindemo/internal/store"
)

// Metrics receives store actions and generation timings.
type Metrics interface {
	store.Observer
	ObserveGeneration(kind string, d time.Duration)
}

type record[T any] interface {
	models.Entity[T]
	Validate() error
}

type Option func(*Dashboard)

func WithLogger(log *slog.Logger) Option {
	return func(d *Dashboard) { d.log = log }
}

func WithMetrics(m Metrics) Option {
	return func(d *Dashboard) { d.metrics = m }
}

// WithClock sets the time source used by the entity operations. Generation
// always uses the configured now.
func WithClock(clock func() time.Time) Option {
	return func(d *Dashboard) { d.clock = clock }
}

type Dashboard struct {
	log       *slog.Logger
	metrics   Metrics
	clock     func() time.Time
	validator *services.ContractValidator
	counts    map[string]int

	Users         *store.Store[models.User]
	Workspaces    *store.Store[models.Workspace]
	Subscriptions *store.Store[models.Subscription]
	Features      *store.Store[models.Feature]
	APIKeys       *store.Store[models.APIKey]
	Notifications *store.Store[models.Notification]
	Tickets       *store.Store[models.SupportTicket]

	mu        sync.Mutex
	seed      uint64
	now       time.Time
	analytics models.AnalyticsSummary
}

// New generates every collection from cfg and returns the populated
// dashboard. A zero cfg.Now is replaced by the clock's current time.
func New(cfg *config.Config, opts ...Option) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Dashboard{clock: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = slog.Default()
	}

	v, err := services.NewContractValidator()
	if err != nil {
		return nil, fmt.Errorf("contract validator: %w", err)
	}
	d.validator = v
	d.counts = cfg.Counts.ByKind()
	d.now = cfg.Now
	if d.now.IsZero() {
		d.now = d.clock()
	}

	var storeOpts []store.Option
	storeOpts = append(storeOpts, store.WithLogger(d.log))
	if d.metrics != nil {
		storeOpts = append(storeOpts, store.WithObserver(d.metrics))
	}
	d.Users = store.New[models.User](services.KindUsers, nil, UserFilter.Defaults(), storeOpts...)
	d.Workspaces = store.New[models.Workspace](services.KindWorkspaces, nil, WorkspaceFilter.Defaults(), storeOpts...)
	d.Subscriptions = store.New[models.Subscription](services.KindSubscriptions, nil, SubscriptionFilter.Defaults(), storeOpts...)
	d.Features = store.New[models.Feature](services.KindFeatures, nil, FeatureFilter.Defaults(), storeOpts...)
	d.APIKeys = store.New[models.APIKey](services.KindAPIKeys, nil, APIKeyFilter.Defaults(), storeOpts...)
	d.Notifications = store.New[models.Notification](services.KindNotifications, nil, NotificationFilter.Defaults(), storeOpts...)
	d.Tickets = store.New[models.SupportTicket](services.KindTickets, nil, TicketFilter.Defaults(), storeOpts...)

	if err := d.Regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return d, nil
}

// Regenerate reloads every store and the analytics summary from seed. Filters
// and selections survive; records are replaced. Every store is attempted; a
// failing store keeps its previous records and the errors are joined.
func (d *Dashboard) Regenerate(seed uint64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seed = seed
	d.log.Info("generating dashboard data", "seed", seed, "now", d.now)

	errs := []error{
		load(d, d.Users, services.KindUsers, (*generator.Generator).Users),
		load(d, d.Workspaces, services.KindWorkspaces, (*generator.Generator).Workspaces),
		load(d, d.Subscriptions, services.KindSubscriptions, (*generator.Generator).Subscriptions),
		load(d, d.Features, services.KindFeatures, (*generator.Generator).Features),
		load(d, d.APIKeys, services.KindAPIKeys, (*generator.Generator).APIKeys),
		load(d, d.Notifications, services.KindNotifications, (*generator.Generator).Notifications),
		load(d, d.Tickets, services.KindTickets, (*generator.Generator).Tickets),
	}

	summary, err := d.generateAnalytics()
	if err == nil {
		d.analytics = summary
	}
	errs = append(errs, err)
	return errors.Join(errs...)
}

func (d *Dashboard) newGenerator(kind string) *generator.Generator {
	return generator.New(KindSeed(d.seed, kind), d.now)
}

func (d *Dashboard) observe(kind string, start time.Time, n int) {
	elapsed := time.Since(start)
	if d.metrics != nil {
		d.metrics.ObserveGeneration(kind, elapsed)
	}
	d.log.Debug("generated", "kind", kind, "count", n, "duration", elapsed)
}

// load generates kind's records, validates them, and hands them to s.
func load[T record[T]](d *Dashboard, s *store.Store[T], kind string, gen func(*generator.Generator, int) ([]T, error)) error {
	return s.Load(func() ([]T, error) {
		start := time.Now()
		records, err := gen(d.newGenerator(kind), d.counts[kind])
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", kind, err)
		}
		d.observe(kind, start, len(records))
		if err := check(d, kind, records); err != nil {
			return nil, err
		}
		return records, nil
	})
}

// check validates records at the generator/store boundary: typed invariants
// first, then the JSON output contract.
func check[T record[T]](d *Dashboard, kind string, records []T) error {
	var errs []error
	for _, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if err := d.validator.ValidateValue(kind, records); err != nil {
		d.log.Error("generated data breaks its contract", "kind", kind, "error", err)
		return err
	}
	return nil
}

func (d *Dashboard) generateAnalytics() (models.AnalyticsSummary, error) {
	start := time.Now()
	summary, err := d.newGenerator(services.KindAnalytics).Analytics()
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("generate analytics: %w", err)
	}
	d.observe(services.KindAnalytics, start, 1)
	if err := d.validator.ValidateValue(services.KindAnalytics, summary); err != nil {
		return models.AnalyticsSummary{}, err
	}
	return summary, nil
}

// Analytics returns the current summary.
func (d *Dashboard) Analytics() models.AnalyticsSummary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analytics
}

// Seed returns the base seed of the current data.
func (d *Dashboard) Seed() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seed
}

// Now returns the instant generated timestamps are anchored to.
func (d *Dashboard) Now() time.Time {
	return d.now
}
