package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

// Renderer backends selectable at run time.
const (
	RendererChromium = "chromium"
	RendererStatic   = "static"
)

// DefaultAxeScriptURL pins the rule engine version so audits stay comparable
// across runs.
const DefaultAxeScriptURL = "https://cdn.jsdelivr.net/npm/axe-core@4.9.1/axe.min.js"

// Config carries every knob the crawl-and-audit pipeline consumes.
// Built from file defaults merged with env and flag overrides.
type Config struct {
	SeedURL       string
	MaxPages      int
	MaxDepth      int
	Workers       int
	PageTimeout   time.Duration
	Deadline      time.Duration
	QuickWinsTopN int

	// ExcludePatterns are regexps matched against normalized URLs; matching
	// links are never enqueued.
	ExcludePatterns []string

	Renderer     string
	AxeScriptURL string

	Statement StatementConfig
}

// StatementConfig holds the organisation details printed into the generated
// accessibility statement.
type StatementConfig struct {
	OrgName      string
	ContactName  string
	ContactEmail string
	SLADays      int
}

// DefaultConfig returns the base configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPages:      40,
		MaxDepth:      3,
		Workers:       4,
		PageTimeout:   15 * time.Second,
		Deadline:      10 * time.Minute,
		QuickWinsTopN: 10,
		Renderer:      RendererChromium,
		AxeScriptURL:  DefaultAxeScriptURL,
		Statement: StatementConfig{
			ContactName:  "Accessibility Lead",
			ContactEmail: "accessibility@example.com",
			SLADays:      10,
		},
	}
}

// Validate is the single fatal gate: anything it rejects stops the run before
// any crawl work begins.
func (c Config) Validate() error {
	u, err := url.Parse(c.SeedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: seed_url %q is not an absolute URL", ErrConfiguration, c.SeedURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: seed_url scheme %q is not http(s)", ErrConfiguration, u.Scheme)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("%w: max_pages must be positive, got %d", ErrConfiguration, c.MaxPages)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must be non-negative, got %d", ErrConfiguration, c.MaxDepth)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrConfiguration, c.Workers)
	}
	if c.PageTimeout <= 0 {
		return fmt.Errorf("%w: page_timeout must be positive", ErrConfiguration)
	}
	if c.QuickWinsTopN <= 0 {
		return fmt.Errorf("%w: quick_wins must be positive, got %d", ErrConfiguration, c.QuickWinsTopN)
	}
	if c.Renderer != RendererChromium && c.Renderer != RendererStatic {
		return fmt.Errorf("%w: unknown renderer %q", ErrConfiguration, c.Renderer)
	}
	for _, p := range c.ExcludePatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %v", ErrConfiguration, p, err)
		}
	}
	return nil
}
