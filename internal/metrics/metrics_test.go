package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/inaiurai/admindemo/internal/models"
	"github.com/inaiurai/admindemo/internal/store"
)

func newTestRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	r, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, reg
}

func TestNew_DuplicateRegistrationFails(t *testing.T) {
	_, reg := newTestRecorder(t)
	if _, err := New(reg); err == nil {
		t.Fatal("expected an error registering the collectors twice")
	}
}

func TestObserveAction_FromStore(t *testing.T) {
	r, _ := newTestRecorder(t)
	s := store.New("features", []models.Feature{{ID: "1"}, {ID: "2"}}, nil, store.WithObserver(r))

	s.Create(models.Feature{ID: "3"})
	s.Create(models.Feature{ID: "4"})
	s.Delete("1")
	enabled := true
	s.Update(models.FeaturePatch{ID: "2", Enabled: &enabled})

	if got := testutil.ToFloat64(r.actions.WithLabelValues("features", "create")); got != 2 {
		t.Errorf("create actions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.actions.WithLabelValues("features", "delete")); got != 1 {
		t.Errorf("delete actions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.records.WithLabelValues("features")); got != 3 {
		t.Errorf("records gauge = %v, want 3", got)
	}
	if n := testutil.CollectAndCount(r.actions); n != 3 {
		t.Errorf("action series = %d, want 3", n)
	}
}

func TestObserveGeneration(t *testing.T) {
	r, _ := newTestRecorder(t)
	r.ObserveGeneration("users", 2*time.Millisecond)
	r.ObserveGeneration("users", 3*time.Millisecond)
	r.ObserveGeneration("tickets", time.Millisecond)
	if n := testutil.CollectAndCount(r.generation, namespace+"_generation_duration_seconds"); n != 2 {
		t.Errorf("histogram series = %d, want 2", n)
	}
}

func TestWriteText(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.ObserveAction("users", store.KindCreate, 51)

	var buf bytes.Buffer
	if err := WriteText(&buf, reg); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`admindemo_store_actions_total{action="create",store="users"} 1`,
		`admindemo_store_records{store="users"} 51`,
		"# TYPE admindemo_store_actions_total counter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
