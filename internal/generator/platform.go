package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inaiurai/admindemo/internal/models"
)

// Features generates count feature flags. About 70% come out enabled.
func (g *Generator) Features(count int) ([]models.Feature, error) {
	if err := checkCount("features", count); err != nil {
		return nil, err
	}
	out := make([]models.Feature, 0, count)
	for i := 1; i <= count; i++ {
		name := pick(g, featureNames)
		typ := pick(g, models.FeatureTypes)
		category := pick(g, models.FeatureCategories)
		createdAt := g.date(g.since(), g.now)
		out = append(out, models.Feature{
			ID:             id(i),
			Name:           name,
			Key:            Slug(name),
			Description:    fmt.Sprintf("%s for %s workflows", name, category),
			Type:           typ,
			Category:       category,
			Enabled:        g.chance(70),
			CreatedAt:      createdAt,
			UpdatedAt:      g.date(createdAt, g.now),
			AvailablePlans: typ.AvailablePlans(),
		})
	}
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

// APIKeys generates count API keys. Only active keys carry a secret and a
// last-used time; only revoked keys carry a revocation time.
func (g *Generator) APIKeys(count int) ([]models.APIKey, error) {
	if err := checkCount("api keys", count); err != nil {
		return nil, err
	}
	out := make([]models.APIKey, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, g.apiKey(i))
	}
	if g.err != nil {
		return nil, g.err
	}
	return out, nil
}

func (g *Generator) apiKey(i int) models.APIKey {
	status := pick(g, models.APIKeyStatuses)
	createdAt := g.date(g.since(), g.now)

	k := models.APIKey{
		ID:        id(i),
		Name:      pick(g, apiKeyNames),
		Status:    status,
		Scopes:    subset(g, models.Scopes, models.ScopeRead),
		CreatedAt: createdAt,
	}
	switch status {
	case models.APIKeyStatusActive:
		k.Key = ptr(models.APIKeyPrefix + g.token())
		k.LastUsedAt = ptr(g.date(createdAt, g.now))
		k.ExpiresAt = g.date(g.now.Add(time.Hour), g.now.AddDate(1, 0, 0))
	case models.APIKeyStatusRevoked:
		k.RevokedAt = ptr(g.date(createdAt, g.now))
		k.ExpiresAt = g.date(g.now.Add(time.Hour), g.now.AddDate(1, 0, 0))
	case models.APIKeyStatusExpired:
		k.ExpiresAt = g.date(createdAt, g.now)
	}
	k.Workspace = g.workspaces(1)[0]
	k.CreatedBy = g.users(1)[0]
	k.UsageCount = g.intn(0, 100_000)
	k.RateLimit = pick(g, rateLimits)
	return k
}

// token returns 32 hex characters drawn from the generator's stream.
func (g *Generator) token() string {
	if g.err != nil {
		return ""
	}
	u, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		g.err = fmt.Errorf("api key token: %w", err)
		return ""
	}
	return strings.ReplaceAll(u.String(), "-", "")
}
