package naver

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"land-collector/models"
	"land-collector/utils"
)

var planKinds = []string{"road", "rail", "jigu"}

// PlanFetcher loads road, rail and district development plans that fall
// inside a region's strict bounds.
type PlanFetcher struct {
	client      *Client
	timeout     time.Duration
	rateLimitMs int
	logger      *utils.Logger
}

// NewPlanFetcher returns a PlanFetcher whose three requests run on a
// worker pool spaced rateLimitMs apart.
func NewPlanFetcher(client *Client, timeout time.Duration, rateLimitMs int, logger *utils.Logger) *PlanFetcher {
	return &PlanFetcher{client: client, timeout: timeout, rateLimitMs: rateLimitMs, logger: logger}
}

// FetchPlans never fails; a kind that cannot be loaded is an empty list.
func (p *PlanFetcher) FetchPlans(ctx context.Context, region models.Region, cred models.Credential) *models.DevelopmentPlans {
	params := url.Values{}
	params.Set("zoom", mapZoom)
	params.Set("leftLon", coord(region.Bounds.West))
	params.Set("rightLon", coord(region.Bounds.East))
	params.Set("topLat", coord(region.Bounds.North))
	params.Set("bottomLat", coord(region.Bounds.South))

	var (
		mu      sync.Mutex
		results = make(map[string][]json.RawMessage, len(planKinds))
	)

	pool := utils.NewWorkerPool(len(planKinds), p.rateLimitMs)
	for _, kind := range planKinds {
		kind := kind
		pool.Submit(func() {
			items := p.fetchKind(ctx, region, kind, params, cred)
			mu.Lock()
			results[kind] = items
			mu.Unlock()
		})
	}
	pool.Wait()

	plans := &models.DevelopmentPlans{
		Road: results["road"],
		Rail: results["rail"],
		Jigu: results["jigu"],
	}
	p.logger.Info("[plans] %s: road %d, rail %d, jigu %d",
		region.Name, len(plans.Road), len(plans.Rail), len(plans.Jigu))
	return plans
}

func (p *PlanFetcher) fetchKind(ctx context.Context, region models.Region, kind string, params url.Values, cred models.Credential) []json.RawMessage {
	path := "/api/developmentplan/" + kind + "/list"
	body, err := p.client.get(ctx, path, params, cred.Token, p.timeout)
	if err != nil {
		p.logger.Warn("[plans] %s %s: %v", region.Name, kind, err)
		return []json.RawMessage{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil || items == nil {
		if err != nil {
			p.logger.Warn("[plans] %s %s: %v", region.Name, kind, &MalformedResponseError{Endpoint: path, Err: err})
		}
		return []json.RawMessage{}
	}
	return items
}
