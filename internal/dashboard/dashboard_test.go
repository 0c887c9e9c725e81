package dashboard

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/inaiurai/admindemo/internal/config"
	"github.com/inaiurai/admindemo/internal/filter"
	"github.com/inaiurai/admindemo/internal/metrics"
	"github.com/inaiurai/admindemo/internal/models"
	"github.com/inaiurai/admindemo/internal/services"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	genNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	opNow  = time.Date(2026, 3, 16, 9, 30, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Now = genNow
	return cfg
}

func newTestDashboard(t *testing.T, opts ...Option) *Dashboard {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return opNow })}, opts...)
	d, err := New(testConfig(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func encodeJSON(t *testing.T, s Snapshot) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Encode(&buf, config.FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.Bytes()
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNew_PopulatesEveryStore(t *testing.T) {
	d := newTestDashboard(t)
	counts := testConfig().Counts
	got := map[string]int{
		services.KindUsers:         len(d.Users.Records()),
		services.KindWorkspaces:    len(d.Workspaces.Records()),
		services.KindSubscriptions: len(d.Subscriptions.Records()),
		services.KindFeatures:      len(d.Features.Records()),
		services.KindAPIKeys:       len(d.APIKeys.Records()),
		services.KindNotifications: len(d.Notifications.Records()),
		services.KindTickets:       len(d.Tickets.Records()),
	}
	if !reflect.DeepEqual(got, counts.ByKind()) {
		t.Errorf("record counts = %v, want %v", got, counts.ByKind())
	}
	if d.APIKeys.Loading() || d.APIKeys.Err() != nil {
		t.Errorf("store left loading=%v err=%v", d.APIKeys.Loading(), d.APIKeys.Err())
	}
	if len(d.Analytics().Daily) != 30 {
		t.Errorf("analytics daily points = %d", len(d.Analytics().Daily))
	}
	if f := d.Tickets.Filters(); f["search"] != "" || f["priority"] != "all" {
		t.Errorf("ticket filters = %v", f)
	}
}

func TestNew_Reproducible(t *testing.T) {
	a := encodeJSON(t, newTestDashboard(t).Snapshot())
	b := encodeJSON(t, newTestDashboard(t).Snapshot())
	if !bytes.Equal(a, b) {
		t.Fatal("same config produced different snapshots")
	}
}

func TestNew_ZeroCounts(t *testing.T) {
	cfg := testConfig()
	cfg.Counts = config.Counts{}
	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(d.Users.Records()) != 0 || len(d.Tickets.Records()) != 0 {
		t.Fatal("expected empty stores")
	}
	raw := encodeJSON(t, d.Snapshot())
	if !gjson.GetBytes(raw, "users").IsArray() {
		t.Errorf("users should encode as an empty array: %s", gjson.GetBytes(raw, "users").Raw)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Counts.APIKeys = -1
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNew_ZeroNowUsesClock(t *testing.T) {
	cfg := testConfig()
	cfg.Now = time.Time{}
	d, err := New(cfg, WithClock(func() time.Time { return opNow }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !d.Now().Equal(opNow) {
		t.Errorf("Now() = %v, want %v", d.Now(), opNow)
	}
}

func TestKindSeed(t *testing.T) {
	if KindSeed(42, services.KindUsers) != KindSeed(42, services.KindUsers) {
		t.Fatal("KindSeed is not deterministic")
	}
	seen := map[uint64]string{}
	for _, kind := range services.Kinds {
		s := KindSeed(42, kind)
		if prev, ok := seen[s]; ok {
			t.Fatalf("%s and %s share seed %d", prev, kind, s)
		}
		seen[s] = kind
	}
	if KindSeed(42, services.KindUsers) == KindSeed(43, services.KindUsers) {
		t.Fatal("base seed ignored")
	}
}

// ---------------------------------------------------------------------------
// Entity operations
// ---------------------------------------------------------------------------

func TestRevokeAPIKey(t *testing.T) {
	d := newTestDashboard(t)
	before, ok := d.APIKeys.Find("3")
	if !ok {
		t.Fatal("no key 3")
	}
	d.APIKeys.Select(&before)

	if !d.RevokeAPIKey("3") {
		t.Fatal("RevokeAPIKey reported no match")
	}
	after, _ := d.APIKeys.Find("3")
	if after.Status != models.APIKeyStatusRevoked {
		t.Errorf("status = %s", after.Status)
	}
	if after.RevokedAt == nil || !after.RevokedAt.Equal(opNow) {
		t.Errorf("revokedAt = %v, want %v", after.RevokedAt, opNow)
	}
	if after.Name != before.Name || !reflect.DeepEqual(after.Scopes, before.Scopes) || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("revoke changed name, scopes or createdAt")
	}
	if !reflect.DeepEqual(after.Key, before.Key) {
		t.Error("revoke changed the key material")
	}
	if !reflect.DeepEqual(*d.APIKeys.Selected(), after) {
		t.Error("selection not updated with the record")
	}
}

func TestToggleFeature(t *testing.T) {
	d := newTestDashboard(t)
	before, _ := d.Features.Find("2")
	d.ToggleFeature("2", !before.Enabled)
	after, _ := d.Features.Find("2")
	if after.Enabled == before.Enabled {
		t.Fatal("enabled not changed")
	}
	after.Enabled = before.Enabled
	if !reflect.DeepEqual(after, before) {
		t.Error("toggle changed other fields")
	}
	d.ToggleFeature("2", before.Enabled)
	d.ToggleFeature("2", before.Enabled)
	if again, _ := d.Features.Find("2"); again.Enabled != before.Enabled {
		t.Error("ToggleFeature does not set the value directly")
	}
}

func TestLifecycleOperations(t *testing.T) {
	d := newTestDashboard(t)

	d.ArchiveWorkspace("1")
	if w, _ := d.Workspaces.Find("1"); w.Status != models.WorkspaceStatusArchived || !w.UpdatedAt.Equal(opNow) {
		t.Errorf("workspace = %s updated %v", w.Status, w.UpdatedAt)
	}

	d.CancelSubscription("1")
	s, _ := d.Subscriptions.Find("1")
	if s.Status != models.SubscriptionStatusCanceled || !s.EndDate.Equal(opNow) || s.RenewalDate != nil {
		t.Errorf("subscription = %s end %v renewal %v", s.Status, s.EndDate, s.RenewalDate)
	}

	for _, n := range d.Notifications.Records() {
		if n.Status == models.NotificationStatusSent {
			continue
		}
		if !d.CancelNotification(n.ID) {
			t.Fatalf("CancelNotification(%s) reported no match", n.ID)
		}
		if got, _ := d.Notifications.Find(n.ID); got.Status != models.NotificationStatusCanceled || got.ScheduledAt != nil {
			t.Errorf("notification = %s scheduled %v", got.Status, got.ScheduledAt)
		}
		break
	}

	d.ResolveTicket("1")
	tk, _ := d.Tickets.Find("1")
	if tk.Status != models.TicketStatusResolved || tk.ResolvedAt == nil || !tk.ResolvedAt.Equal(opNow) || !tk.UpdatedAt.Equal(opNow) {
		t.Errorf("ticket = %s resolved %v updated %v", tk.Status, tk.ResolvedAt, tk.UpdatedAt)
	}

	agent := d.Users.Records()[0]
	d.AssignTicket("2", agent)
	tk, _ = d.Tickets.Find("2")
	if tk.Status != models.TicketStatusInProgress || tk.AssignedTo == nil || tk.AssignedTo.ID != agent.ID {
		t.Errorf("ticket = %s assigned %v", tk.Status, tk.AssignedTo)
	}
}

func TestLifecycleOperations_KeepInvariants(t *testing.T) {
	d := newTestDashboard(t)
	agent := d.Users.Records()[0]

	for _, w := range d.Workspaces.Records() {
		d.ArchiveWorkspace(w.ID)
	}
	for _, s := range d.Subscriptions.Records() {
		d.CancelSubscription(s.ID)
	}
	for _, tk := range d.Tickets.Records() {
		// every ticket goes through both transitions from whatever status it had
		d.AssignTicket(tk.ID, agent)
		d.ResolveTicket(tk.ID)
		d.AssignTicket(tk.ID, agent)
	}
	for _, n := range d.Notifications.Records() {
		canceled := d.CancelNotification(n.ID)
		got, _ := d.Notifications.Find(n.ID)
		if n.Status == models.NotificationStatusSent {
			if canceled || !reflect.DeepEqual(got, n) {
				t.Errorf("sent notification %s was canceled", n.ID)
			}
		} else if got.Status != models.NotificationStatusCanceled {
			t.Errorf("notification %s status = %s", n.ID, got.Status)
		}
	}

	var errs []error
	for _, w := range d.Workspaces.Records() {
		errs = append(errs, w.Validate())
	}
	for _, s := range d.Subscriptions.Records() {
		errs = append(errs, s.Validate())
	}
	for _, tk := range d.Tickets.Records() {
		errs = append(errs, tk.Validate())
	}
	for _, n := range d.Notifications.Records() {
		errs = append(errs, n.Validate())
	}
	if err := errors.Join(errs...); err != nil {
		t.Fatalf("operations broke record invariants:\n%v", err)
	}

	tk, _ := d.Tickets.Find("1")
	d.ResolveTicket("1")
	if got, _ := d.Tickets.Find("1"); got.AssignedTo != nil || tk.AssignedTo == nil {
		t.Errorf("resolve kept assignee %v", got.AssignedTo)
	}
}

func TestOperations_MissingIDIsNoop(t *testing.T) {
	d := newTestDashboard(t)
	before := d.Snapshot()
	ops := map[string]func() bool{
		"revoke":  func() bool { return d.RevokeAPIKey("404") },
		"toggle":  func() bool { return d.ToggleFeature("404", true) },
		"archive": func() bool { return d.ArchiveWorkspace("404") },
		"cancel":  func() bool { return d.CancelSubscription("404") },
		"recall":  func() bool { return d.CancelNotification("404") },
		"resolve": func() bool { return d.ResolveTicket("404") },
		"assign":  func() bool { return d.AssignTicket("404", models.User{ID: "1"}) },
	}
	for name, op := range ops {
		if op() {
			t.Errorf("%s matched a missing id", name)
		}
	}
	if !reflect.DeepEqual(before, d.Snapshot()) {
		t.Error("no-op operations changed state")
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearch_DesignatedFieldsOnly(t *testing.T) {
	search := func(q string) map[string]string { return map[string]string{filter.SearchKey: q} }

	owner := models.User{Name: "Zora Quill", Email: "needle@example.com"}
	tests := []struct {
		name string
		hit  bool
		miss bool
	}{
		{"user email", filter.Match(models.User{Name: "Ada Lovelace", Email: "needle@example.com"}, search("ada"), UserFilter),
			filter.Match(models.User{Name: "Ada Lovelace", Email: "needle@example.com"}, search("needle"), UserFilter)},
		{"workspace owner", filter.Match(models.Workspace{Name: "Acme", Description: "Growth team", Owner: owner}, search("growth"), WorkspaceFilter),
			filter.Match(models.Workspace{Name: "Acme", Description: "Growth team", Owner: owner}, search("zora"), WorkspaceFilter)},
		{"feature key", filter.Match(models.Feature{Name: "Dark Mode", Key: "dark_mode_v2"}, search("dark mode"), FeatureFilter),
			filter.Match(models.Feature{Name: "Dark Mode", Key: "dark_mode_v2"}, search("mode_v2"), FeatureFilter)},
		{"api key scopes and workspace", filter.Match(models.APIKey{Name: "Staging", Scopes: []models.Scope{models.ScopeRead}, Workspace: models.Workspace{Name: "Readers"}}, search("stag"), APIKeyFilter),
			filter.Match(models.APIKey{Name: "Staging", Scopes: []models.Scope{models.ScopeRead}, Workspace: models.Workspace{Name: "Readers"}}, search("read"), APIKeyFilter)},
		{"ticket requester", filter.Match(models.SupportTicket{Subject: "Login fails", Content: "SSO loop", Requester: owner}, search("sso"), TicketFilter),
			filter.Match(models.SupportTicket{Subject: "Login fails", Content: "SSO loop", Requester: owner}, search("quill"), TicketFilter)},
		{"subscription email", filter.Match(models.Subscription{User: owner, Workspace: models.Workspace{Name: "Acme"}}, search("acme"), SubscriptionFilter),
			filter.Match(models.Subscription{User: owner, Workspace: models.Workspace{Name: "Acme"}}, search("needle"), SubscriptionFilter)},
	}
	for _, tc := range tests {
		if !tc.hit {
			t.Errorf("%s: designated field did not match", tc.name)
		}
		if tc.miss {
			t.Errorf("%s: matched on a field outside name/title and content/description", tc.name)
		}
	}

	d := newTestDashboard(t)
	d.Users.UpdateFilters(search("example.com"))
	if got := d.Users.Visible(UserFilter); len(got) != 0 {
		t.Errorf("user search matched %d records by email", len(got))
	}
}

// ---------------------------------------------------------------------------
// Regeneration and read model
// ---------------------------------------------------------------------------

func TestRegenerate_KeepsFilters(t *testing.T) {
	d := newTestDashboard(t)
	d.APIKeys.UpdateFilters(map[string]string{"status": "active"})
	old := d.APIKeys.Records()

	if err := d.Regenerate(7); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if d.Seed() != 7 {
		t.Errorf("Seed() = %d", d.Seed())
	}
	if reflect.DeepEqual(old, d.APIKeys.Records()) {
		t.Error("records not regenerated")
	}
	if d.APIKeys.Filters()["status"] != "active" {
		t.Error("filters lost on regenerate")
	}
	for _, k := range d.Snapshot().APIKeys {
		if k.Status != models.APIKeyStatusActive {
			t.Errorf("snapshot includes %s key %s", k.Status, k.ID)
		}
	}
}

func TestSnapshot_EncodeFormats(t *testing.T) {
	d := newTestDashboard(t)
	snap := d.Snapshot()

	raw := encodeJSON(t, snap)
	if got := gjson.GetBytes(raw, "apiKeys.#").Int(); got != 10 {
		t.Errorf("apiKeys count = %d", got)
	}
	if !gjson.GetBytes(raw, "analytics.summary.mrr").Exists() {
		t.Error("analytics summary missing")
	}

	var buf bytes.Buffer
	if err := snap.Encode(&buf, config.FormatYAML); err != nil {
		t.Fatalf("Encode yaml: %v", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	keys, ok := doc["apiKeys"].([]any)
	if !ok || len(keys) != 10 {
		t.Fatalf("yaml apiKeys = %T len %d", doc["apiKeys"], len(keys))
	}
	first := keys[0].(map[string]any)
	if _, ok := first["revokedAt"]; !ok {
		t.Error("yaml output dropped null revokedAt")
	}

	if err := snap.Encode(&buf, "toml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

// ---------------------------------------------------------------------------
// Metrics
// ---------------------------------------------------------------------------

func TestMetricsWiring(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("metrics.New: %v", err)
	}
	d := newTestDashboard(t, WithMetrics(rec))
	d.RevokeAPIKey("1")

	var buf bytes.Buffer
	if err := metrics.WriteText(&buf, reg); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`admindemo_store_actions_total{action="fetch_success",store="apiKeys"} 1`,
		`admindemo_store_actions_total{action="update",store="apiKeys"} 1`,
		`admindemo_store_records{store="users"} 50`,
		`admindemo_generation_duration_seconds_count{kind="analytics"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
	n, err := testutil.GatherAndCount(reg, "admindemo_generation_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != len(services.Kinds) {
		t.Errorf("generation series = %d, want %d\n%s", n, len(services.Kinds), out)
	}
}
