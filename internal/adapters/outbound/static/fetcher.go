// Package static implements the renderer and rule-engine ports without a
// browser: plain HTTP fetch plus goquery DOM inspection. JavaScript-rendered
// content is invisible to it, but it needs no external binary, which makes it
// the backend of choice for CI runs and hermetic tests.
package static

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/a11yscan/a11yscan/internal/domain"
)

const (
	defaultSizeCap   = 5 * 1024 * 1024
	defaultUserAgent = "a11yscan/1.0 (+https://github.com/a11yscan/a11yscan)"
)

// fetcher retrieves one HTML document. Timeouts come from the caller's
// context, so the per-page budget set by the crawler applies end to end.
type fetcher struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
}

func newFetcher() *fetcher {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &fetcher{
		client:    &http.Client{Transport: transport},
		sizeCap:   defaultSizeCap,
		userAgent: defaultUserAgent,
	}
}

// fetch returns the decoded UTF-8 document, the final URL after redirects,
// and the HTTP status. Navigation failures come back as *domain.NavigationError.
func (f *fetcher) fetch(ctx context.Context, rawURL string) ([]byte, string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", 0, err
	}
	defer resp.Body.Close()

	finalURL := resp.Request.URL.String()
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, finalURL, resp.StatusCode, &domain.NavigationError{
			Reason:     domain.LoadFailureHTTP,
			StatusCode: resp.StatusCode,
		}
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, finalURL, resp.StatusCode, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "" && !strings.Contains(mediaType, "text/html") && !strings.Contains(mediaType, "application/xhtml+xml") {
		return nil, finalURL, resp.StatusCode, errors.New("non-html content")
	}

	data, err := io.ReadAll(io.LimitReader(body, f.sizeCap))
	if err != nil {
		return nil, finalURL, resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return nil, finalURL, resp.StatusCode, fmt.Errorf("decoding body: %w", err)
		}
		decoded = data
	}

	return decoded, finalURL, resp.StatusCode, nil
}
