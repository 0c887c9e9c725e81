package generator

import (
	"time"

	"github.com/inaiurai/admindemo/internal/models"
)

// The Generate* functions run one generator on a fresh stream: the same
// (count, seed, now) always yields the same records.

func GenerateUsers(count int, seed uint64, now time.Time) ([]models.User, error) {
	return New(seed, now).Users(count)
}

func GenerateWorkspaces(count int, seed uint64, now time.Time) ([]models.Workspace, error) {
	return New(seed, now).Workspaces(count)
}

func GenerateSubscriptions(count int, seed uint64, now time.Time) ([]models.Subscription, error) {
	return New(seed, now).Subscriptions(count)
}

func GenerateFeatures(count int, seed uint64, now time.Time) ([]models.Feature, error) {
	return New(seed, now).Features(count)
}

func GenerateAPIKeys(count int, seed uint64, now time.Time) ([]models.APIKey, error) {
	return New(seed, now).APIKeys(count)
}

func GenerateNotifications(count int, seed uint64, now time.Time) ([]models.Notification, error) {
	return New(seed, now).Notifications(count)
}

func GenerateTickets(count int, seed uint64, now time.Time) ([]models.SupportTicket, error) {
	return New(seed, now).Tickets(count)
}

func GenerateAnalytics(seed uint64, now time.Time) (models.AnalyticsSummary, error) {
	return New(seed, now).Analytics()
}
