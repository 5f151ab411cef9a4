package naver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"land-collector/config"
	"land-collector/models"
	"land-collector/utils"
)

const (
	markersPath = "/api/complexes/single-markers/2.0"

	// Query box padding around a region's strict bounds.
	lonPadding = 0.1
	latPadding = 0.05

	openRangeMax = "900000000"
)

// CredentialRefresher obtains a fresh credential, bypassing any cache.
type CredentialRefresher interface {
	Refresh(ctx context.Context, region models.Region) (models.Credential, error)
}

// Fetcher runs the bounded-region complex query.
type Fetcher struct {
	client         *Client
	refresher      CredentialRefresher
	timeout        time.Duration
	maxAuthRetries int
	logger         *utils.Logger
}

// NewFetcher wires a Fetcher. refresher is called on 401/403, at most
// cfg.MaxAuthRetries times per Fetch.
func NewFetcher(client *Client, refresher CredentialRefresher, cfg *config.Config, logger *utils.Logger) *Fetcher {
	retries := cfg.MaxAuthRetries
	if retries < 0 {
		retries = 0
	}
	return &Fetcher{
		client:         client,
		refresher:      refresher,
		timeout:        cfg.FetchTimeout,
		maxAuthRetries: retries,
		logger:         logger,
	}
}

// Fetch returns every complex the portal reports inside the padded region
// box, together with the credential the successful request used.
//
// Only an exhausted auth retry, a failed refresh or a cancelled ctx is
// returned as an error. Transport failures, other statuses and malformed
// payloads are logged and yield an empty slice.
func (f *Fetcher) Fetch(ctx context.Context, region models.Region, cred models.Credential) ([]models.Complex, models.Credential, error) {
	params := MarkerParams(region)

	for attempt := 0; ; attempt++ {
		start := time.Now()
		body, err := f.client.get(ctx, markersPath, params, cred.Token, f.timeout)

		var authErr *AuthExpiredError
		if errors.As(err, &authErr) {
			if attempt >= f.maxAuthRetries {
				return nil, cred, authErr
			}
			f.logger.Warn("[fetch] %s: credential rejected (HTTP %d), refreshing", region.Name, authErr.Status)
			fresh, rerr := f.refresher.Refresh(ctx, region)
			if rerr != nil {
				return nil, cred, fmt.Errorf("refresh credential: %w", rerr)
			}
			cred = fresh
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, cred, ctx.Err()
			}
			f.logger.Warn("[fetch] %s: %v; continuing with no complexes", region.Name, err)
			return []models.Complex{}, cred, nil
		}

		complexes, err := DecodeComplexes(body)
		if err != nil {
			f.logger.Warn("[fetch] %s: %v; continuing with no complexes", region.Name, &MalformedResponseError{Endpoint: markersPath, Err: err})
			return []models.Complex{}, cred, nil
		}

		f.logger.Info("[fetch] %s: %d complexes in %v", region.Name, len(complexes), time.Since(start).Round(time.Millisecond))
		return complexes, cred, nil
	}
}

// MarkerParams builds the marker query for region: permissive price and
// area ranges and the padded bounding box.
func MarkerParams(region models.Region) url.Values {
	box := region.Bounds.Expand(lonPadding, latPadding)

	v := url.Values{}
	v.Set("cortarNo", region.CortarNo)
	v.Set("zoom", mapZoom)
	v.Set("priceType", "RETAIL")
	v.Set("realEstateType", "APT:PRE:ABYG:JGC")
	v.Set("tag", "::::::::")
	v.Set("rentPriceMin", "0")
	v.Set("rentPriceMax", openRangeMax)
	v.Set("priceMin", "0")
	v.Set("priceMax", openRangeMax)
	v.Set("areaMin", "0")
	v.Set("areaMax", openRangeMax)
	v.Set("showArticle", "false")
	v.Set("sameAddressGroup", "false")
	v.Set("isPresale", "true")
	for _, empty := range []string{
		"markerId", "markerType", "selectedComplexNo", "selectedComplexBuildingNo",
		"fakeComplexMarker", "tradeType", "oldBuildYears", "recentlyBuildYears",
		"minHouseHoldCount", "maxHouseHoldCount", "minMaintenanceCost",
		"maxMaintenanceCost", "directions",
	} {
		v.Set(empty, "")
	}
	v.Set("leftLon", coord(box.West))
	v.Set("rightLon", coord(box.East))
	v.Set("topLat", coord(box.North))
	v.Set("bottomLat", coord(box.South))
	return v
}

// DecodeComplexes parses a marker payload. An empty body or null is an
// empty list; anything other than a JSON array is an error. Array
// elements that are not objects are skipped.
func DecodeComplexes(body []byte) ([]models.Complex, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []models.Complex{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}

	out := make([]models.Complex, 0, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var c models.Complex
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
