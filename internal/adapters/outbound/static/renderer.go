package static

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// Renderer implements domain.PageRenderer over plain HTTP.
type Renderer struct {
	fetcher *fetcher
}

func NewRenderer() *Renderer {
	return &Renderer{fetcher: newFetcher()}
}

func (r *Renderer) Render(ctx context.Context, rawURL string) (*domain.RenderResult, error) {
	body, finalURL, status, err := r.fetcher.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	base, err := url.Parse(finalURL)
	if err != nil {
		return nil, fmt.Errorf("parsing final url: %w", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})

	return &domain.RenderResult{
		URL:        rawURL,
		FinalURL:   finalURL,
		HTTPStatus: status,
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		HTML:       string(body),
		Links:      links,
	}, nil
}
