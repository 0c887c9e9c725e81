package services

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Entity kinds with a published output contract. The names double as the
// JSON keys of a dashboard snapshot.
const (
	KindUsers         = "users"
	KindWorkspaces    = "workspaces"
	KindSubscriptions = "subscriptions"
	KindFeatures      = "features"
	KindAPIKeys       = "apiKeys"
	KindNotifications = "notifications"
	KindTickets       = "tickets"
	KindAnalytics     = "analytics"
)

// Kinds lists every contract in snapshot order.
var Kinds = []string{
	KindUsers, KindWorkspaces, KindSubscriptions, KindFeatures,
	KindAPIKeys, KindNotifications, KindTickets, KindAnalytics,
}

const schemaBaseURL = "https://inaiurai.dev/schemas/admindemo/"

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrValidation can be used with errors.Is to detect contract violations.
var ErrValidation = errors.New("validation failed")

// ErrUnknownKind is returned for a kind without a contract.
var ErrUnknownKind = errors.New("unknown kind")

// ContractValidator checks generator output against the JSON shape consumers
// rely on: camelCase names, closed enums, explicit nulls and the
// status-driven presence rules.
type ContractValidator struct {
	schemas map[string]*jsonschema.Schema
}

// NewContractValidator compiles the embedded schemas. common.json is loaded as
// a shared resource so the per-kind schemas can reference its definitions.
func NewContractValidator() (*ContractValidator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}
	for _, e := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", e.Name(), err)
		}
		if err := c.AddResource(schemaBaseURL+e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %q: %w", e.Name(), err)
		}
	}

	schemas := make(map[string]*jsonschema.Schema, len(Kinds))
	for _, kind := range Kinds {
		s, err := c.Compile(schemaBaseURL + kind + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile schema %q: %w", kind, err)
		}
		schemas[kind] = s
	}
	return &ContractValidator{schemas: schemas}, nil
}

// Validate checks a JSON document against kind's contract.
func (v *ContractValidator) Validate(kind string, doc json.RawMessage) error {
	schema, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	var decoded interface{}
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(decoded); err != nil {
		return fmt.Errorf("%s: %w: %v", kind, ErrValidation, err)
	}
	return nil
}

// ValidateValue marshals value and validates the result.
func (v *ContractValidator) ValidateValue(kind string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", kind, err)
	}
	return v.Validate(kind, raw)
}

// Has reports whether kind has a contract.
func (v *ContractValidator) Has(kind string) bool {
	_, ok := v.schemas[kind]
	return ok
}
