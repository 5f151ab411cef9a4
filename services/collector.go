package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"land-collector/models"
	"land-collector/utils"
)

// ComplexFetcher queries the portal for a region's complexes.
type ComplexFetcher interface {
	Fetch(ctx context.Context, region models.Region, cred models.Credential) ([]models.Complex, models.Credential, error)
}

// PlanFetcher loads development plans for a region.
type PlanFetcher interface {
	FetchPlans(ctx context.Context, region models.Region, cred models.Credential) *models.DevelopmentPlans
}

// CollectOptions toggles optional steps of a run.
type CollectOptions struct {
	DevelopmentPlans bool
}

// Collector runs the per-region pipeline: credential, fetch, filter, stats.
type Collector struct {
	gate    *CredentialGate
	fetcher ComplexFetcher
	plans   PlanFetcher
	filter  RegionFilter
	stats   *StatsService
	logger  *utils.Logger
	now     func() time.Time
}

// NewCollector wires a Collector. plans may be nil when development plans
// are never requested.
func NewCollector(gate *CredentialGate, fetcher ComplexFetcher, plans PlanFetcher, filter RegionFilter, stats *StatsService, logger *utils.Logger) *Collector {
	return &Collector{
		gate:    gate,
		fetcher: fetcher,
		plans:   plans,
		filter:  filter,
		stats:   stats,
		logger:  logger,
		now:     time.Now,
	}
}

// Collect runs one region. Steps are strictly sequential and the run stops
// between steps once ctx is done.
func (c *Collector) Collect(ctx context.Context, region models.Region, opts CollectOptions) (*models.CollectionResult, error) {
	started := c.now()
	c.logger.Info("[collect] %s: starting", region.Name)

	cred, err := c.gate.Ensure(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("credential for %s: %w", region.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fetched, cred, err := c.fetcher.Fetch(ctx, region, cred)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", region.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := c.filter.Filter(fetched, region)
	c.logger.Info("[collect] %s: %d fetched -> %d inside region", region.Name, len(fetched), len(kept))

	result := &models.CollectionResult{
		RunID:          uuid.New(),
		CollectionTime: started,
		Region:         region.Name,
		Location:       region.Name + " 지역",
		Method:         models.CollectionMethod,
		FetchedCount:   len(fetched),
		Complexes:      kept,
		Statistics:     c.stats.Generate(kept, region),
	}

	if opts.DevelopmentPlans && c.plans != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.DevelopmentPlans = c.plans.FetchPlans(ctx, region, cred)
	}

	c.logger.Info("[collect] %s: done in %v", region.Name, c.now().Sub(started).Round(time.Millisecond))
	return result, nil
}
