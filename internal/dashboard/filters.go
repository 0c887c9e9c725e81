package dashboard

import (
	"strconv"

	"github.com/inaiurai/admindemo/internal/filter"
	"github.com/inaiurai/admindemo/internal/models"
)

// Filter specs per kind. Search matches the record's name or title and, where
// the kind has one, its content or description. Subscriptions have neither,
// so they are searched by the names of the user and workspace they belong
// to. The categorical keys are the list page's dropdowns.

var UserFilter = filter.Spec[models.User]{
	Search: func(u models.User) []string { return []string{u.Name} },
	Fields: map[string]func(models.User) string{
		"role":   func(u models.User) string { return string(u.Role) },
		"status": func(u models.User) string { return string(u.Status) },
	},
}

var WorkspaceFilter = filter.Spec[models.Workspace]{
	Search: func(w models.Workspace) []string { return []string{w.Name, w.Description} },
	Fields: map[string]func(models.Workspace) string{
		"status":   func(w models.Workspace) string { return string(w.Status) },
		"industry": func(w models.Workspace) string { return string(w.Industry) },
	},
}

var SubscriptionFilter = filter.Spec[models.Subscription]{
	Search: func(s models.Subscription) []string { return []string{s.User.Name, s.Workspace.Name} },
	Fields: map[string]func(models.Subscription) string{
		"plan":   func(s models.Subscription) string { return string(s.Plan) },
		"status": func(s models.Subscription) string { return string(s.Status) },
	},
}

var FeatureFilter = filter.Spec[models.Feature]{
	Search: func(f models.Feature) []string { return []string{f.Name, f.Description} },
	Fields: map[string]func(models.Feature) string{
		"type":     func(f models.Feature) string { return string(f.Type) },
		"category": func(f models.Feature) string { return string(f.Category) },
		"enabled":  func(f models.Feature) string { return strconv.FormatBool(f.Enabled) },
	},
}

var APIKeyFilter = filter.Spec[models.APIKey]{
	Search: func(k models.APIKey) []string { return []string{k.Name} },
	Fields: map[string]func(models.APIKey) string{
		"status": func(k models.APIKey) string { return string(k.Status) },
	},
}

var NotificationFilter = filter.Spec[models.Notification]{
	Search: func(n models.Notification) []string { return []string{n.Title, n.Content} },
	Fields: map[string]func(models.Notification) string{
		"type":   func(n models.Notification) string { return string(n.Type) },
		"status": func(n models.Notification) string { return string(n.Status) },
	},
}

var TicketFilter = filter.Spec[models.SupportTicket]{
	Search: func(t models.SupportTicket) []string { return []string{t.Subject, t.Content} },
	Fields: map[string]func(models.SupportTicket) string{
		"status":   func(t models.SupportTicket) string { return string(t.Status) },
		"priority": func(t models.SupportTicket) string { return string(t.Priority) },
		"category": func(t models.SupportTicket) string { return string(t.Category) },
	},
}
