package models

import (
	"fmt"
	"slices"
	"time"
)

type Invoice struct {
	ID     string        `json:"id"`
	Amount int           `json:"amount"`
	Date   time.Time     `json:"date"`
	Status InvoiceStatus `json:"status"`
}

type Subscription struct {
	ID            string             `json:"id"`
	Plan          Plan               `json:"plan"`
	Price         int                `json:"price"`
	Status        SubscriptionStatus `json:"status"`
	PaymentMethod PaymentMethod      `json:"paymentMethod"`
	CreatedAt     time.Time          `json:"createdAt"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	RenewalDate   *time.Time         `json:"renewalDate"`
	User          User               `json:"user"`
	Workspace     Workspace          `json:"workspace"`
	Invoices      []Invoice          `json:"invoices"`
}

func (s Subscription) EntityID() string { return s.ID }

func (s Subscription) Clone() Subscription {
	s.RenewalDate = clonePtr(s.RenewalDate)
	s.Invoices = slices.Clone(s.Invoices)
	return s
}

func (s Subscription) Validate() error {
	if !s.Plan.Valid() {
		return fmt.Errorf("subscription %s: plan %q: %w", s.ID, s.Plan, ErrInvalidEnum)
	}
	if !s.Status.Valid() {
		return fmt.Errorf("subscription %s: status %q: %w", s.ID, s.Status, ErrInvalidEnum)
	}
	if !s.PaymentMethod.Valid() {
		return fmt.Errorf("subscription %s: payment method %q: %w", s.ID, s.PaymentMethod, ErrInvalidEnum)
	}
	if s.Price != s.Plan.Price() {
		return fmt.Errorf("subscription %s: price %d does not match plan %s: %w", s.ID, s.Price, s.Plan, ErrInvariant)
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("subscription %s: endDate before startDate: %w", s.ID, ErrInvariant)
	}
	if (s.Status == SubscriptionStatusCanceled) != (s.RenewalDate == nil) {
		return fmt.Errorf("subscription %s: renewalDate must be null iff canceled: %w", s.ID, ErrInvariant)
	}
	for i, inv := range s.Invoices {
		if !inv.Status.Valid() {
			return fmt.Errorf("subscription %s invoice %s: status %q: %w", s.ID, inv.ID, inv.Status, ErrInvalidEnum)
		}
		if i > 0 && inv.Date.Before(s.Invoices[i-1].Date) {
			return fmt.Errorf("subscription %s: invoices out of order: %w", s.ID, ErrInvariant)
		}
	}
	if err := s.User.Validate(); err != nil {
		return fmt.Errorf("subscription %s user: %w", s.ID, err)
	}
	if err := s.Workspace.Validate(); err != nil {
		return fmt.Errorf("subscription %s workspace: %w", s.ID, err)
	}
	return nil
}

// SubscriptionPatch carries a shallow subscription update. Plan does not
// reprice the record; callers that change the plan set Price as well.
type SubscriptionPatch struct {
	ID            string
	Plan          *Plan
	Price         *int
	Status        *SubscriptionStatus
	PaymentMethod *PaymentMethod
	EndDate       *time.Time
	RenewalDate   Nullable[time.Time]
	Invoices      []Invoice
}

func (p SubscriptionPatch) PatchID() string { return p.ID }

func (p SubscriptionPatch) Apply(s *Subscription) {
	set(p.Plan, &s.Plan)
	set(p.Price, &s.Price)
	set(p.Status, &s.Status)
	set(p.PaymentMethod, &s.PaymentMethod)
	set(p.EndDate, &s.EndDate)
	p.RenewalDate.applyTo(&s.RenewalDate)
	if p.Invoices != nil {
		s.Invoices = slices.Clone(p.Invoices)
	}
}
