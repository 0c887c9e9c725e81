package filter

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type row struct {
	ID     string
	Name   string
	Notes  string
	Status string
	Kind   string
}

var rowSpec = Spec[row]{
	Search: func(r row) []string { return []string{r.Name, r.Notes} },
	Fields: map[string]func(row) string{
		"status": func(r row) string { return r.Status },
		"kind":   func(r row) string { return r.Kind },
	},
}

var rows = []row{
	{ID: "1", Name: "Production API", Notes: "primary", Status: "active", Kind: "core"},
	{ID: "2", Name: "Staging", Notes: "mirrors PROD data", Status: "revoked", Kind: "beta"},
	{ID: "3", Name: "Mobile App", Notes: "", Status: "active", Kind: "beta"},
	{ID: "4", Name: "Data Sync", Notes: "nightly", Status: "expired", Kind: "core"},
}

func ids(rs []row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]string
		want    []string
	}{
		{"defaults return everything", rowSpec.Defaults(), []string{"1", "2", "3", "4"}},
		{"nil filters return everything", nil, []string{"1", "2", "3", "4"}},
		{"search is case-insensitive over name and notes", map[string]string{"search": "prod"}, []string{"1", "2"}},
		{"categorical equality", map[string]string{"status": "active"}, []string{"1", "3"}},
		{"categorical is case-sensitive", map[string]string{"status": "Active"}, []string{}},
		{"predicates are conjunctive", map[string]string{"status": "active", "kind": "beta"}, []string{"3"}},
		{"search and category", map[string]string{"search": "a", "kind": "core", "status": "all"}, []string{"1", "4"}},
		{"unknown keys are ignored", map[string]string{"owner": "nobody"}, []string{"1", "2", "3", "4"}},
		{"no match", map[string]string{"search": "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(rows, tt.filters, rowSpec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	before := append([]row(nil), rows...)
	_ = Apply(rows, map[string]string{"status": "active"}, rowSpec)
	if !reflect.DeepEqual(before, rows) {
		t.Fatal("Apply modified its input")
	}
}

func TestDefaults(t *testing.T) {
	want := map[string]string{"search": "", "status": "all", "kind": "all"}
	if got := rowSpec.Defaults(); !reflect.DeepEqual(got, want) {
		t.Errorf("Defaults() = %v, want %v", got, want)
	}
}

func TestProperty_Idempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	statuses := []interface{}{"all", "active", "revoked", "expired", "missing"}
	kinds := []interface{}{"all", "core", "beta"}

	properties.Property("filtering twice equals filtering once", prop.ForAll(
		func(search, status, kind string) bool {
			f := map[string]string{"search": search, "status": status, "kind": kind}
			once := Apply(rows, f, rowSpec)
			twice := Apply(once, f, rowSpec)
			return reflect.DeepEqual(once, twice)
		},
		gen.OneConstOf("", "a", "prod", "sync", "x"),
		gen.OneConstOf(statuses...),
		gen.OneConstOf(kinds...),
	))

	properties.Property("result is an ordered subsequence of the input", prop.ForAll(
		func(search string) bool {
			got := Apply(rows, map[string]string{"search": search}, rowSpec)
			j := 0
			for _, r := range rows {
				if j < len(got) && got[j] == r {
					j++
				}
			}
			return j == len(got)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
