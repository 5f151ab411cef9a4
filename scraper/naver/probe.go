package naver

import (
	"context"
	"net/url"
	"time"

	"land-collector/models"
)

const cortarsPath = "/api/cortars"

// Prober checks a cached credential against a cheap endpoint.
type Prober struct {
	client  *Client
	timeout time.Duration
}

// NewProber returns a Prober bounded by timeout per call.
func NewProber(client *Client, timeout time.Duration) *Prober {
	return &Prober{client: client, timeout: timeout}
}

// Probe reports whether the portal accepts cred. Any failure, including a
// timeout, counts as rejection.
func (p *Prober) Probe(ctx context.Context, region models.Region, cred models.Credential) bool {
	params := url.Values{}
	params.Set("zoom", mapZoom)
	params.Set("centerLat", coord(region.CenterLat))
	params.Set("centerLon", coord(region.CenterLon))

	if _, err := p.client.get(ctx, cortarsPath, params, cred.Token, p.timeout); err != nil {
		p.client.logger.Debug("[probe] %s: %v", region.Name, err)
		return false
	}
	return true
}
