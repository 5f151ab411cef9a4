package naver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"land-collector/config"
	"land-collector/models"
	"land-collector/utils"
)

// BrowserProvider captures a bearer token by loading the map page in
// headless Chrome and watching outgoing API requests.
type BrowserProvider struct {
	baseURL    string
	userAgent  string
	chromeBin  string
	navTimeout time.Duration
	settle     time.Duration
	logger     *utils.Logger
	now        func() time.Time
}

// NewBrowserProvider creates a BrowserProvider from cfg.
func NewBrowserProvider(cfg *config.Config, logger *utils.Logger) *BrowserProvider {
	return &BrowserProvider{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		chromeBin:  cfg.ChromeBin,
		navTimeout: cfg.NavigationTimeout,
		settle:     cfg.SettleDelay,
		logger:     logger,
		now:        time.Now,
	}
}

// Acquire runs one browser session for region. The browser is shut down
// before Acquire returns, whatever the outcome.
func (p *BrowserProvider) Acquire(ctx context.Context, region models.Region) (models.Credential, error) {
	chromeBin := findChromeBinary(p.chromeBin)
	p.logger.Info("[browser] Capturing token for %s (binary: %s)", region.Name, displayBin(chromeBin))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(p.userAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, p.navTimeout+p.settle)
	defer cancelRun()

	capture := &tokenCapture{}
	chromedp.ListenTarget(runCtx, func(ev interface{}) {
		switch e := ev.(type) {
		case *network.EventRequestWillBeSent:
			if e.Request != nil {
				capture.offer(extractBearer(e.Request.Headers))
			}
		case *network.EventRequestWillBeSentExtraInfo:
			capture.offer(extractBearer(e.Headers))
		}
	})

	pageURL := fmt.Sprintf("%s/complexes?ms=%s,%s,%s",
		p.baseURL, coord(region.CenterLat), coord(region.CenterLon), mapZoom)

	err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.Sleep(p.settle),
	)

	token := capture.get()
	if token == "" {
		if ctx.Err() != nil {
			return models.Credential{}, ctx.Err()
		}
		return models.Credential{}, &AcquisitionError{Region: region.Name, Err: err}
	}
	if err != nil {
		p.logger.Debug("[browser] session ended with %v after token was captured", err)
	}

	p.logger.Info("[browser] Token captured for %s", region.Name)
	return models.NewCredential(token, p.now()), nil
}

// tokenCapture keeps the first bearer token seen.
type tokenCapture struct {
	mu    sync.Mutex
	token string
}

func (t *tokenCapture) offer(token string) {
	if token == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.token == "" {
		t.token = token
	}
}

func (t *tokenCapture) get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

// extractBearer returns the token of an "Authorization: Bearer ..." header,
// matching the header name case-insensitively.
func extractBearer(headers network.Headers) string {
	for name, value := range headers {
		if !strings.EqualFold(name, "authorization") {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(s, "Bearer "))
		}
	}
	return ""
}

// findChromeBinary locates Chrome/Chromium binary.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func displayBin(bin string) string {
	if bin == "" {
		return "chromedp default"
	}
	return bin
}
