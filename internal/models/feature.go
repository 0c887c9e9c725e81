package models

import (
	"fmt"
	"slices"
	"time"
)

type Feature struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Key            string          `json:"key"`
	Description    string          `json:"description"`
	Type           FeatureType     `json:"type"`
	Category       FeatureCategory `json:"category"`
	Enabled        bool            `json:"enabled"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	AvailablePlans []Plan          `json:"availablePlans"`
}

func (f Feature) EntityID() string { return f.ID }

func (f Feature) Clone() Feature {
	f.AvailablePlans = slices.Clone(f.AvailablePlans)
	return f
}

func (f Feature) Validate() error {
	if !f.Type.Valid() {
		return fmt.Errorf("feature %s: type %q: %w", f.ID, f.Type, ErrInvalidEnum)
	}
	if !f.Category.Valid() {
		return fmt.Errorf("feature %s: category %q: %w", f.ID, f.Category, ErrInvalidEnum)
	}
	if f.UpdatedAt.Before(f.CreatedAt) {
		return fmt.Errorf("feature %s: updatedAt before createdAt: %w", f.ID, ErrInvariant)
	}
	if !slices.Equal(f.AvailablePlans, f.Type.AvailablePlans()) {
		return fmt.Errorf("feature %s: availablePlans do not match type %s: %w", f.ID, f.Type, ErrInvariant)
	}
	return nil
}

type FeaturePatch struct {
	ID             string
	Name           *string
	Description    *string
	Type           *FeatureType
	Category       *FeatureCategory
	Enabled        *bool
	UpdatedAt      *time.Time
	AvailablePlans []Plan
}

func (p FeaturePatch) PatchID() string { return p.ID }

func (p FeaturePatch) Apply(f *Feature) {
	set(p.Name, &f.Name)
	set(p.Description, &f.Description)
	set(p.Type, &f.Type)
	set(p.Category, &f.Category)
	set(p.Enabled, &f.Enabled)
	set(p.UpdatedAt, &f.UpdatedAt)
	if p.AvailablePlans != nil {
		f.AvailablePlans = slices.Clone(p.AvailablePlans)
	}
}
