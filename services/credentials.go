package services

import (
	"context"

	"land-collector/models"
	"land-collector/utils"
)

// CredentialProvider acquires a brand-new credential.
type CredentialProvider interface {
	Acquire(ctx context.Context, region models.Region) (models.Credential, error)
}

// CredentialStore persists the single tracked credential.
type CredentialStore interface {
	Load() (models.Credential, bool)
	Save(cred models.Credential) error
	Clear() error
}

// CredentialProber checks whether the portal still accepts a credential.
type CredentialProber interface {
	Probe(ctx context.Context, region models.Region, cred models.Credential) bool
}

// CredentialGate hands out a usable credential: cached when possible,
// freshly acquired otherwise.
type CredentialGate struct {
	provider CredentialProvider
	store    CredentialStore
	prober   CredentialProber
	logger   *utils.Logger
}

// NewCredentialGate builds a gate. A nil prober trusts any fresh cache entry.
func NewCredentialGate(provider CredentialProvider, store CredentialStore, prober CredentialProber, logger *utils.Logger) *CredentialGate {
	return &CredentialGate{provider: provider, store: store, prober: prober, logger: logger}
}

// Ensure returns the cached credential if it is fresh and passes the probe,
// and acquires (and caches) a new one otherwise.
func (g *CredentialGate) Ensure(ctx context.Context, region models.Region) (models.Credential, error) {
	if cred, ok := g.store.Load(); ok {
		if g.prober == nil {
			g.logger.Info("[token] Using cached token (expires %s)", cred.ExpiresAt().Format("15:04:05"))
			return cred, nil
		}
		if g.prober.Probe(ctx, region, cred) {
			g.logger.Info("[token] Cached token verified (expires %s)", cred.ExpiresAt().Format("15:04:05"))
			return cred, nil
		}
		g.logger.Warn("[token] Cached token rejected by probe, acquiring a new one")
	}
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}
	return g.Refresh(ctx, region)
}

// Refresh ignores the cache, acquires a credential and saves it. A failed
// save is logged; the credential is still returned.
func (g *CredentialGate) Refresh(ctx context.Context, region models.Region) (models.Credential, error) {
	cred, err := g.provider.Acquire(ctx, region)
	if err != nil {
		return models.Credential{}, err
	}
	if err := g.store.Save(cred); err != nil {
		g.logger.Warn("[token] Could not cache token: %v", err)
	}
	return cred, nil
}
