// Package discovery probes the static backgrounds namespace for sequentially
// named images. There is no manifest: staff drop files named 1.jpg, 2.png, ...
// into the folder and the scanner finds them.
package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	applog "celebra/internal/log"
	"celebra/internal/theme"
)

const (
	// DefaultMaxIndex bounds the scan when assets are missing or the
	// namespace misbehaves.
	DefaultMaxIndex = 50
	// DefaultProbeTimeout bounds each individual probe so the index cap
	// stays a meaningful bound on scan duration.
	DefaultProbeTimeout = 3 * time.Second
	// DefaultPublicPath is the browser-facing path themes reference.
	DefaultPublicPath = "/backgrounds"

	defaultOverlayColor = "bg-black/40"
)

// extensions are tried in order for each index; the first hit wins.
var extensions = []string{"jpg", "jpeg", "png", "webp"}

// Config describes where and how the scanner probes.
type Config struct {
	// BaseURL is the absolute URL of the backgrounds namespace the scanner
	// issues requests against, e.g. "http://127.0.0.1:8080/backgrounds".
	BaseURL string
	// PublicPath is the path prefix written into discovered themes, which
	// browsers resolve relative to the page origin. Defaults to
	// DefaultPublicPath.
	PublicPath string
	// MaxIndex caps the scan. Defaults to DefaultMaxIndex.
	MaxIndex int
	// ProbeTimeout bounds each probe request. Defaults to DefaultProbeTimeout.
	ProbeTimeout time.Duration
	// HTTPClient overrides the probe client, typically from tests.
	HTTPClient *http.Client
}

// Scanner performs bounded sequential discovery of local background images.
type Scanner struct {
	baseURL    string
	publicPath string
	maxIndex   int
	client     *http.Client
}

// NewScanner builds a Scanner from cfg, applying defaults for zero values.
func NewScanner(cfg Config) *Scanner {
	maxIndex := cfg.MaxIndex
	if maxIndex <= 0 {
		maxIndex = DefaultMaxIndex
	}

	publicPath := strings.TrimRight(cfg.PublicPath, "/")
	if publicPath == "" {
		publicPath = DefaultPublicPath
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.ProbeTimeout
		if timeout <= 0 {
			timeout = DefaultProbeTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Scanner{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		publicPath: publicPath,
		maxIndex:   maxIndex,
		client:     client,
	}
}

// Scan probes indices 1..MaxIndex and returns a theme per discovered image.
// Indices are contiguous by contract: the first index with no matching file
// ends the scan, so a gap hides everything after it. Scan never returns an
// error; any failure simply shortens the result, worst case to empty.
func (s *Scanner) Scan(ctx context.Context) []theme.Theme {
	var discovered []theme.Theme

	for index := 1; index <= s.maxIndex; index++ {
		ext, found := s.probeIndex(ctx, index)
		if !found {
			break
		}
		path := fmt.Sprintf("%s/%d.%s", s.publicPath, index, ext)
		discovered = append(discovered, theme.Theme{
			ID:           fmt.Sprintf("local-custom-%d", index),
			Name:         fmt.Sprintf("Custom %d", index),
			PreviewURL:   path,
			BackgroundURL: path,
			OverlayColor: defaultOverlayColor,
		})
	}

	applog.Debug(ctx, "background scan complete", "found", len(discovered), "cap", s.maxIndex)
	return discovered
}

// probeIndex tries every supported extension at the given index and reports
// the first one that exists.
func (s *Scanner) probeIndex(ctx context.Context, index int) (string, bool) {
	for _, ext := range extensions {
		url := fmt.Sprintf("%s/%d.%s", s.baseURL, index, ext)
		if s.probe(ctx, url) {
			return ext, true
		}
	}
	return "", false
}

// probe reports whether url resolves to an actual image. A successful fetch
// whose content type is not image/* counts as a miss: static hosts commonly
// answer unknown paths with a 200 catch-all document, and trusting the status
// alone would fabricate themes out of those.
func (s *Scanner) probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		applog.Debug(ctx, "probe request build failed", "url", url, "error", err)
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		// Network failures are indistinguishable from absence here.
		applog.Debug(ctx, "probe failed", "url", url, "error", err)
		return false
	}
	defer func() {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false
	}

	contentType := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Type")))
	return strings.HasPrefix(contentType, "image/")
}
