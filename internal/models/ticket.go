package models

import (
	"fmt"
	"slices"
	"time"
)

type TicketResponse struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
	Author     ResponseAuthor `json:"author"`
	AuthorName string         `json:"authorName"`
}

type SupportTicket struct {
	ID         string           `json:"id"`
	Subject    string           `json:"subject"`
	Content    string           `json:"content"`
	Status     TicketStatus     `json:"status"`
	Priority   TicketPriority   `json:"priority"`
	Category   TicketCategory   `json:"category"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	ResolvedAt *time.Time       `json:"resolvedAt"`
	Requester  User             `json:"requester"`
	AssignedTo *User            `json:"assignedTo"`
	Responses  []TicketResponse `json:"responses"`
}

func (t SupportTicket) EntityID() string { return t.ID }

func (t SupportTicket) Clone() SupportTicket {
	t.ResolvedAt = clonePtr(t.ResolvedAt)
	t.AssignedTo = clonePtr(t.AssignedTo)
	t.Responses = slices.Clone(t.Responses)
	return t
}

func (t SupportTicket) Validate() error {
	if !t.Status.Valid() {
		return fmt.Errorf("ticket %s: status %q: %w", t.ID, t.Status, ErrInvalidEnum)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("ticket %s: priority %q: %w", t.ID, t.Priority, ErrInvalidEnum)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("ticket %s: category %q: %w", t.ID, t.Category, ErrInvalidEnum)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("ticket %s: updatedAt before createdAt: %w", t.ID, ErrInvariant)
	}
	if t.Status.Done() != (t.ResolvedAt != nil) {
		return fmt.Errorf("ticket %s: resolvedAt must be present iff resolved or closed: %w", t.ID, ErrInvariant)
	}
	if !notBefore(t.ResolvedAt, t.CreatedAt) {
		return fmt.Errorf("ticket %s: resolvedAt before createdAt: %w", t.ID, ErrInvariant)
	}
	if (t.Status == TicketStatusInProgress) != (t.AssignedTo != nil) {
		return fmt.Errorf("ticket %s: assignedTo must be present iff in progress: %w", t.ID, ErrInvariant)
	}
	prev := t.CreatedAt
	for i, r := range t.Responses {
		if !r.Author.Valid() {
			return fmt.Errorf("ticket %s response %s: author %q: %w", t.ID, r.ID, r.Author, ErrInvalidEnum)
		}
		if r.CreatedAt.Before(prev) {
			return fmt.Errorf("ticket %s: responses out of order: %w", t.ID, ErrInvariant)
		}
		if i > 0 && r.Author == t.Responses[i-1].Author {
			return fmt.Errorf("ticket %s: responses do not alternate: %w", t.ID, ErrInvariant)
		}
		prev = r.CreatedAt
	}
	if err := t.Requester.Validate(); err != nil {
		return fmt.Errorf("ticket %s requester: %w", t.ID, err)
	}
	if t.AssignedTo != nil {
		if err := t.AssignedTo.Validate(); err != nil {
			return fmt.Errorf("ticket %s assignee: %w", t.ID, err)
		}
	}
	return nil
}

type SupportTicketPatch struct {
	ID         string
	Subject    *string
	Content    *string
	Status     *TicketStatus
	Priority   *TicketPriority
	Category   *TicketCategory
	UpdatedAt  *time.Time
	ResolvedAt Nullable[time.Time]
	AssignedTo Nullable[User]
	Responses  []TicketResponse
}

func (p SupportTicketPatch) PatchID() string { return p.ID }

func (p SupportTicketPatch) Apply(t *SupportTicket) {
	set(p.Subject, &t.Subject)
	set(p.Content, &t.Content)
	set(p.Status, &t.Status)
	set(p.Priority, &t.Priority)
	set(p.Category, &t.Category)
	set(p.UpdatedAt, &t.UpdatedAt)
	p.ResolvedAt.applyTo(&t.ResolvedAt)
	p.AssignedTo.applyTo(&t.AssignedTo)
	if p.Responses != nil {
		t.Responses = slices.Clone(p.Responses)
	}
}
