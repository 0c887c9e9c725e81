package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/inaiurai/admindemo/internal/models"
)

// Users generates count users with ids "1".."count".
func (g *Generator) Users(count int) ([]models.User, error) {
	if err := checkCount("users", count); err != nil {
		return nil, err
	}
	out := g.users(count)
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

func (g *Generator) users(count int) []models.User {
	out := make([]models.User, 0, count)
	for i := 1; i <= count; i++ {
		first := pick(g, firstNames)
		last := pick(g, lastNames)
		createdAt := g.date(g.since(), g.now)
		out = append(out, models.User{
			ID:              id(i),
			Name:            first + " " + last,
			Email:           strings.ToLower(first + "." + last + "@example.com"),
			Role:            pick(g, models.UserRoles),
			Status:          pick(g, models.UserStatuses),
			CreatedAt:       createdAt,
			LastLoginAt:     g.date(createdAt, g.now),
			WorkspacesCount: g.intn(1, 5),
			Avatar:          "https://i.pravatar.cc/150?u=" + id(i),
		})
	}
	return out
}

// Workspaces generates count workspaces, each with a freshly generated owner.
func (g *Generator) Workspaces(count int) ([]models.Workspace, error) {
	if err := checkCount("workspaces", count); err != nil {
		return nil, err
	}
	out := g.workspaces(count)
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

func (g *Generator) workspaces(count int) []models.Workspace {
	out := make([]models.Workspace, 0, count)
	for i := 1; i <= count; i++ {
		name := pick(g, workspacePrefixes) + " " + pick(g, workspaceSuffixes)
		industry := pick(g, models.Industries)
		createdAt := g.date(g.since(), g.now)
		out = append(out, models.Workspace{
			ID:           id(i),
			Name:         name,
			Description:  fmt.Sprintf("%s workspace for the %s team", name, industry),
			Status:       pick(g, models.WorkspaceStatuses),
			Industry:     industry,
			CreatedAt:    createdAt,
			UpdatedAt:    g.date(createdAt, g.now),
			UsersCount:   g.intn(1, 50),
			StorageUsed:  g.intn(0, models.StorageLimit),
			StorageLimit: models.StorageLimit,
			Owner:        g.users(1)[0],
		})
	}
	return out
}

// Subscriptions generates count subscriptions. Each embeds a fresh user and a
// fresh workspace (which embeds its own owner).
func (g *Generator) Subscriptions(count int) ([]models.Subscription, error) {
	if err := checkCount("subscriptions", count); err != nil {
		return nil, err
	}
	out := make([]models.Subscription, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, g.subscription(i))
	}
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

func (g *Generator) subscription(i int) models.Subscription {
	plan := pick(g, models.Plans)
	status := pick(g, models.SubscriptionStatuses)
	start := g.date(g.since(), g.now)

	var end time.Time
	switch status {
	case models.SubscriptionStatusCanceled:
		end = g.date(start, g.now)
	case models.SubscriptionStatusTrialing:
		end = start.AddDate(0, 0, 14)
	default:
		end = start.AddDate(0, 0, 365)
	}
	var renewal *time.Time
	if status != models.SubscriptionStatusCanceled {
		renewal = ptr(end)
	}

	invoices := make([]models.Invoice, g.intn(1, 6))
	for j := range invoices {
		invoices[j] = models.Invoice{
			ID:     fmt.Sprintf("inv_%d_%d", i, j+1),
			Amount: plan.Price(),
			Date:   start.AddDate(0, j, 0),
			Status: pick(g, models.InvoiceStatuses),
		}
	}

	return models.Subscription{
		ID:            id(i),
		Plan:          plan,
		Price:         plan.Price(),
		Status:        status,
		PaymentMethod: pick(g, models.PaymentMethods),
		CreatedAt:     start,
		StartDate:     start,
		EndDate:       end,
		RenewalDate:   renewal,
		User:          g.users(1)[0],
		Workspace:     g.workspaces(1)[0],
		Invoices:      invoices,
	}
}
