// Package source obtains the station page markup, either over HTTP or from a
// local copy. The extraction core only ever sees the returned string;
// transport failures stay in here.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Koteneva2005-tech/sputnik/internal/logging"
)

const userAgent = "sputnik-schedule (https://github.com/Koteneva2005-tech/sputnik)"

var (
	downloadCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "page_download_count",
		Help: "Number of times the station page was downloaded",
	}, []string{"url"})
	errorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "page_error_count",
		Help: "Number of times downloading the station page failed",
	}, []string{"url"})
)

func init() {
	prometheus.MustRegister(downloadCount, errorCount)
}

// Loader loads and saves station page markup.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a Loader with a bounded-timeout HTTP client.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: &pageTransport{},
		},
		logger: logger,
	}
}

type pageTransport struct{}

func (t *pageTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("User-Agent", userAgent)
	return http.DefaultTransport.RoundTrip(request)
}

// Fetch downloads the page and returns its markup.
func (l *Loader) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		errorCount.With(prometheus.Labels{"url": url}).Inc()
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, l.logger, "close page response")

	if resp.StatusCode != http.StatusOK {
		errorCount.With(prometheus.Labels{"url": url}).Inc()
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorCount.With(prometheus.Labels{"url": url}).Inc()
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	downloadCount.With(prometheus.Labels{"url": url}).Inc()
	logging.LogOperation(l.logger, "page downloaded",
		slog.String("url", url),
		slog.Int("bytes", len(body)))

	return string(body), nil
}

// ReadFile returns the markup from a previously saved page copy.
func (l *Loader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading page copy: %w", err)
	}
	return string(data), nil
}

// Save writes a local copy of the page, creating parent directories as
// needed.
func (l *Loader) Save(path, html string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("saving page copy: %w", err)
	}

	logging.LogOperation(l.logger, "page copy saved", slog.String("path", path))
	return nil
}
