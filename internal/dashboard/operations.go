package dashboard

import (
	"time"

	"github.com/inaiurai/admindemo/internal/models"
)

// Entity-specific operations. Each is a single store Update, so the record
// and a matching selection change together; a missing id is a no-op and
// reports false.

// RevokeAPIKey marks the key revoked at the current time. The secret and
// every other field are left as they are.
func (d *Dashboard) RevokeAPIKey(id string) bool {
	status := models.APIKeyStatusRevoked
	return d.APIKeys.Update(models.APIKeyPatch{
		ID:        id,
		Status:    &status,
		RevokedAt: models.Some(d.clock()),
	})
}

func (d *Dashboard) ToggleFeature(id string, enabled bool) bool {
	return d.Features.Update(models.FeaturePatch{ID: id, Enabled: &enabled})
}

func (d *Dashboard) ArchiveWorkspace(id string) bool {
	status := models.WorkspaceStatusArchived
	now := d.clock()
	return d.Workspaces.Update(models.WorkspacePatch{ID: id, Status: &status, UpdatedAt: &now})
}

// CancelSubscription ends the subscription now and drops its renewal.
func (d *Dashboard) CancelSubscription(id string) bool {
	status := models.SubscriptionStatusCanceled
	now := d.clock()
	return d.Subscriptions.Update(models.SubscriptionPatch{
		ID:          id,
		Status:      &status,
		EndDate:     &now,
		RenewalDate: models.Null[time.Time](),
	})
}

// CancelNotification withdraws a draft or scheduled notification. A sent
// notification cannot be canceled; it is left untouched and reports false.
func (d *Dashboard) CancelNotification(id string) bool {
	if n, ok := d.Notifications.Find(id); !ok || n.Status == models.NotificationStatusSent {
		return false
	}
	status := models.NotificationStatusCanceled
	return d.Notifications.Update(unlessSent{models.NotificationPatch{
		ID:          id,
		Status:      &status,
		ScheduledAt: models.Null[time.Time](),
	}})
}

// unlessSent applies its patch only to notifications that have not gone out,
// so a send racing with a cancel keeps sentAt and stats consistent.
type unlessSent struct {
	models.NotificationPatch
}

func (p unlessSent) Apply(n *models.Notification) {
	if n.Status != models.NotificationStatusSent {
		p.NotificationPatch.Apply(n)
	}
}

// ResolveTicket closes out the ticket now. Only in-progress tickets carry an
// assignee, so the assignment is dropped.
func (d *Dashboard) ResolveTicket(id string) bool {
	status := models.TicketStatusResolved
	now := d.clock()
	return d.Tickets.Update(models.SupportTicketPatch{
		ID:         id,
		Status:     &status,
		UpdatedAt:  &now,
		ResolvedAt: models.Some(now),
		AssignedTo: models.Null[models.User](),
	})
}

// AssignTicket hands the ticket to assignee and moves it to in_progress,
// reopening it when it was resolved or closed.
func (d *Dashboard) AssignTicket(id string, assignee models.User) bool {
	status := models.TicketStatusInProgress
	now := d.clock()
	return d.Tickets.Update(models.SupportTicketPatch{
		ID:         id,
		Status:     &status,
		UpdatedAt:  &now,
		ResolvedAt: models.Null[time.Time](),
		AssignedTo: models.Some(assignee),
	})
}
