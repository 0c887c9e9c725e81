package generator

import (
	"fmt"
	"time"

	"github.com/inaiurai/admindemo/internal/models"
)

// Notifications generates count notifications. Scheduled ones carry a future
// scheduledAt; sent ones carry sentAt and independently drawn stats.
func (g *Generator) Notifications(count int) ([]models.Notification, error) {
	if err := checkCount("notifications", count); err != nil {
		return nil, err
	}
	out := make([]models.Notification, 0, count)
	for i := 1; i <= count; i++ {
		typ := pick(g, models.NotificationTypes)
		status := pick(g, models.NotificationStatuses)
		createdAt := g.date(g.since(), g.now)
		n := models.Notification{
			ID:        id(i),
			Title:     pick(g, notificationTitles[typ]),
			Content:   pick(g, notificationContent[typ]),
			Type:      typ,
			Status:    status,
			Channels:  subset(g, models.Channels, models.ChannelEmail),
			CreatedAt: createdAt,
		}
		switch status {
		case models.NotificationStatusScheduled:
			n.ScheduledAt = ptr(g.date(g.now, g.now.AddDate(0, 0, 30)))
		case models.NotificationStatusSent:
			n.SentAt = ptr(g.date(createdAt, g.now))
			n.Stats = &models.NotificationStats{
				Delivered: g.intn(100, 10_000),
				Opened:    g.intn(50, 5_000),
				Clicked:   g.intn(10, 1_000),
			}
		}
		n.TargetAudience = pick(g, models.Audiences)
		n.CreatedBy = g.users(1)[0]
		out = append(out, n)
	}
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

// Tickets generates count support tickets. Tickets past the open state carry
// a conversation that alternates support and customer replies in time order.
func (g *Generator) Tickets(count int) ([]models.SupportTicket, error) {
	if err := checkCount("tickets", count); err != nil {
		return nil, err
	}
	out := make([]models.SupportTicket, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, g.ticket(i))
	}
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

func (g *Generator) ticket(i int) models.SupportTicket {
	category := pick(g, models.TicketCategories)
	status := pick(g, models.TicketStatuses)
	createdAt := g.date(g.since(), g.now)

	t := models.SupportTicket{
		ID:        id(i),
		Subject:   pick(g, ticketSubjects[category]),
		Content:   pick(g, ticketContent[category]),
		Status:    status,
		Priority:  pick(g, models.TicketPriorities),
		Category:  category,
		CreatedAt: createdAt,
	}
	if status.Done() {
		resolved := g.date(createdAt, g.now)
		t.ResolvedAt = &resolved
		t.UpdatedAt = g.date(resolved, g.now)
	} else {
		t.UpdatedAt = g.date(createdAt, g.now)
	}
	t.Requester = g.users(1)[0]
	if status == models.TicketStatusInProgress {
		t.AssignedTo = &g.users(1)[0]
	}
	t.Responses = []models.TicketResponse{}
	if status != models.TicketStatusOpen {
		t.Responses = g.responses(i, t.CreatedAt, t.UpdatedAt, t.Requester.Name)
	}
	return t
}

func (g *Generator) responses(ticket int, from, to time.Time, customer string) []models.TicketResponse {
	n := g.intn(1, 4)
	out := make([]models.TicketResponse, 0, n)
	at := from
	for j := 0; j < n; j++ {
		at = g.date(at, to)
		r := models.TicketResponse{
			ID:        fmt.Sprintf("resp_%d_%d", ticket, j+1),
			CreatedAt: at,
		}
		if j%2 == 0 {
			r.Author = models.ResponseAuthorSupport
			r.AuthorName = pick(g, supportAgents)
			r.Content = pick(g, supportReplies)
		} else {
			r.Author = models.ResponseAuthorCustomer
			r.AuthorName = customer
			r.Content = pick(g, customerReplies)
		}
		out = append(out, r)
	}
	return out
}
