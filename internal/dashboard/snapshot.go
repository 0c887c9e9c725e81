package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inaiurai/admindemo/internal/config"
	"github.com/inaiurai/admindemo/internal/models"
)

// Snapshot is the read model of every store plus the analytics summary.
type Snapshot struct {
	Seed          uint64                  `json:"seed"`
	Users         []models.User           `json:"users"`
	Workspaces    []models.Workspace      `json:"workspaces"`
	Subscriptions []models.Subscription   `json:"subscriptions"`
	Features      []models.Feature        `json:"features"`
	APIKeys       []models.APIKey         `json:"apiKeys"`
	Notifications []models.Notification   `json:"notifications"`
	Tickets       []models.SupportTicket  `json:"tickets"`
	Analytics     models.AnalyticsSummary `json:"analytics"`
}

// Snapshot copies the visible records of every store. Each store is read
// under its own lock, so a concurrent mutation may land between two stores.
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		Seed:          d.Seed(),
		Users:         d.Users.Visible(UserFilter),
		Workspaces:    d.Workspaces.Visible(WorkspaceFilter),
		Subscriptions: d.Subscriptions.Visible(SubscriptionFilter),
		Features:      d.Features.Visible(FeatureFilter),
		APIKeys:       d.APIKeys.Visible(APIKeyFilter),
		Notifications: d.Notifications.Visible(NotificationFilter),
		Tickets:       d.Tickets.Visible(TicketFilter),
		Analytics:     d.Analytics(),
	}
}

// Encode writes s as indented JSON or as YAML. YAML output keeps the JSON
// field names and null markers, so both formats describe the same document.
func (s Snapshot) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case config.FormatYAML:
		raw, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
