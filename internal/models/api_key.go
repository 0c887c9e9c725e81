package models

import (
	"fmt"
	"slices"
	"time"
)

// APIKeyPrefix prefixes the secret of every live key.
const APIKeyPrefix = "sk_live_"

type APIKey struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Status     APIKeyStatus `json:"status"`
	Key        *string      `json:"key,omitempty"` // only issued while active
	Scopes     []Scope      `json:"scopes"`
	CreatedAt  time.Time    `json:"createdAt"`
	ExpiresAt  time.Time    `json:"expiresAt"`
	RevokedAt  *time.Time   `json:"revokedAt"`
	LastUsedAt *time.Time   `json:"lastUsedAt"`
	Workspace  Workspace    `json:"workspace"`
	CreatedBy  User         `json:"createdBy"`
	UsageCount int          `json:"usageCount"`
	RateLimit  int          `json:"rateLimit"`
}

func (k APIKey) EntityID() string { return k.ID }

func (k APIKey) Clone() APIKey {
	k.Key = clonePtr(k.Key)
	k.Scopes = slices.Clone(k.Scopes)
	k.RevokedAt = clonePtr(k.RevokedAt)
	k.LastUsedAt = clonePtr(k.LastUsedAt)
	return k
}

// Validate checks the status-driven presence rules of a freshly generated key.
// A key revoked through the store keeps its secret, so Validate is meant for
// generator output rather than mutated records.
func (k APIKey) Validate() error {
	if !k.Status.Valid() {
		return fmt.Errorf("api key %s: status %q: %w", k.ID, k.Status, ErrInvalidEnum)
	}
	if len(k.Scopes) == 0 {
		return fmt.Errorf("api key %s: no scopes: %w", k.ID, ErrInvariant)
	}
	for _, s := range k.Scopes {
		if !s.Valid() {
			return fmt.Errorf("api key %s: scope %q: %w", k.ID, s, ErrInvalidEnum)
		}
	}
	active := k.Status == APIKeyStatusActive
	if active != (k.Key != nil) {
		return fmt.Errorf("api key %s: key must be present iff active: %w", k.ID, ErrInvariant)
	}
	if active != (k.LastUsedAt != nil) {
		return fmt.Errorf("api key %s: lastUsedAt must be present iff active: %w", k.ID, ErrInvariant)
	}
	if (k.Status == APIKeyStatusRevoked) != (k.RevokedAt != nil) {
		return fmt.Errorf("api key %s: revokedAt must be present iff revoked: %w", k.ID, ErrInvariant)
	}
	if !notBefore(k.RevokedAt, k.CreatedAt) || !notBefore(k.LastUsedAt, k.CreatedAt) {
		return fmt.Errorf("api key %s: timestamp before createdAt: %w", k.ID, ErrInvariant)
	}
	if k.ExpiresAt.Before(k.CreatedAt) {
		return fmt.Errorf("api key %s: expiresAt before createdAt: %w", k.ID, ErrInvariant)
	}
	if err := k.Workspace.Validate(); err != nil {
		return fmt.Errorf("api key %s workspace: %w", k.ID, err)
	}
	if err := k.CreatedBy.Validate(); err != nil {
		return fmt.Errorf("api key %s creator: %w", k.ID, err)
	}
	return nil
}

type APIKeyPatch struct {
	ID         string
	Name       *string
	Status     *APIKeyStatus
	Key        Nullable[string]
	Scopes     []Scope
	ExpiresAt  *time.Time
	RevokedAt  Nullable[time.Time]
	LastUsedAt Nullable[time.Time]
	UsageCount *int
	RateLimit  *int
}

func (p APIKeyPatch) PatchID() string { return p.ID }

func (p APIKeyPatch) Apply(k *APIKey) {
	set(p.Name, &k.Name)
	set(p.Status, &k.Status)
	p.Key.applyTo(&k.Key)
	if p.Scopes != nil {
		k.Scopes = slices.Clone(p.Scopes)
	}
	set(p.ExpiresAt, &k.ExpiresAt)
	p.RevokedAt.applyTo(&k.RevokedAt)
	p.LastUsedAt.applyTo(&k.LastUsedAt)
	set(p.UsageCount, &k.UsageCount)
	set(p.RateLimit, &k.RateLimit)
}
