package models

import (
	"fmt"
	"slices"
	"time"
)

// NotificationStats are delivery counters of a sent notification. The three
// values are independent; delivered >= opened >= clicked is not guaranteed.
type NotificationStats struct {
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
}

type Notification struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	Type           NotificationType   `json:"type"`
	Status         NotificationStatus `json:"status"`
	Channels       []Channel          `json:"channels"`
	CreatedAt      time.Time          `json:"createdAt"`
	ScheduledAt    *time.Time         `json:"scheduledAt"`
	SentAt         *time.Time         `json:"sentAt"`
	TargetAudience Audience           `json:"targetAudience"`
	CreatedBy      User               `json:"createdBy"`
	Stats          *NotificationStats `json:"stats"`
}

func (n Notification) EntityID() string { return n.ID }

func (n Notification) Clone() Notification {
	n.Channels = slices.Clone(n.Channels)
	n.ScheduledAt = clonePtr(n.ScheduledAt)
	n.SentAt = clonePtr(n.SentAt)
	n.Stats = clonePtr(n.Stats)
	return n
}

func (n Notification) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("notification %s: type %q: %w", n.ID, n.Type, ErrInvalidEnum)
	}
	if !n.Status.Valid() {
		return fmt.Errorf("notification %s: status %q: %w", n.ID, n.Status, ErrInvalidEnum)
	}
	if !n.TargetAudience.Valid() {
		return fmt.Errorf("notification %s: audience %q: %w", n.ID, n.TargetAudience, ErrInvalidEnum)
	}
	if len(n.Channels) == 0 {
		return fmt.Errorf("notification %s: no channels: %w", n.ID, ErrInvariant)
	}
	for _, c := range n.Channels {
		if !c.Valid() {
			return fmt.Errorf("notification %s: channel %q: %w", n.ID, c, ErrInvalidEnum)
		}
	}
	if (n.Status == NotificationStatusScheduled) != (n.ScheduledAt != nil) {
		return fmt.Errorf("notification %s: scheduledAt must be present iff scheduled: %w", n.ID, ErrInvariant)
	}
	sent := n.Status == NotificationStatusSent
	if sent != (n.SentAt != nil) || sent != (n.Stats != nil) {
		return fmt.Errorf("notification %s: sentAt and stats must be present iff sent: %w", n.ID, ErrInvariant)
	}
	if !notBefore(n.SentAt, n.CreatedAt) || !notBefore(n.ScheduledAt, n.CreatedAt) {
		return fmt.Errorf("notification %s: timestamp before createdAt: %w", n.ID, ErrInvariant)
	}
	if err := n.CreatedBy.Validate(); err != nil {
		return fmt.Errorf("notification %s creator: %w", n.ID, err)
	}
	return nil
}

type NotificationPatch struct {
	ID             string
	Title          *string
	Content        *string
	Type           *NotificationType
	Status         *NotificationStatus
	Channels       []Channel
	ScheduledAt    Nullable[time.Time]
	SentAt         Nullable[time.Time]
	TargetAudience *Audience
	Stats          Nullable[NotificationStats]
}

func (p NotificationPatch) PatchID() string { return p.ID }

func (p NotificationPatch) Apply(n *Notification) {
	set(p.Title, &n.Title)
	set(p.Content, &n.Content)
	set(p.Type, &n.Type)
	set(p.Status, &n.Status)
	if p.Channels != nil {
		n.Channels = slices.Clone(p.Channels)
	}
	p.ScheduledAt.applyTo(&n.ScheduledAt)
	p.SentAt.applyTo(&n.SentAt)
	set(p.TargetAudience, &n.TargetAudience)
	p.Stats.applyTo(&n.Stats)
}
