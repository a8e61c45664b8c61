package chromium

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// axeScript fetches the axe-core bundle once and caches it for the lifetime
// of the engine, so a 40-page crawl downloads it a single time.
type axeScript struct {
	url    string
	client *http.Client

	once   sync.Once
	source string
	err    error
}

func newAxeScript(url string) *axeScript {
	return &axeScript{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *axeScript) load(ctx context.Context) (string, error) {
	s.once.Do(func() {
		s.source, s.err = s.fetch(ctx)
	})
	return s.source, s.err
}

func (s *axeScript) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("building axe-core request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching axe-core from %s: %w", s.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching axe-core from %s: status %d", s.url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("reading axe-core body: %w", err)
	}
	return string(body), nil
}
