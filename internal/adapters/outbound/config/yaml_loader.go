// Package config loads scan configuration from .a11yscan.yaml and the
// environment, merged over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/a11yscan/a11yscan/internal/domain"
)

const fileName = ".a11yscan.yaml"

// fileConfig is the on-disk schema. Durations are strings ("15s", "10m")
// because yaml.v3 has no native time.Duration support; zero values mean
// "keep the default".
type fileConfig struct {
	MaxPages      int      `yaml:"max_pages"`
	MaxDepth      int      `yaml:"max_depth"`
	Workers       int      `yaml:"workers"`
	PageTimeout   string   `yaml:"page_timeout"`
	Deadline      string   `yaml:"deadline"`
	QuickWinsTop  int      `yaml:"quick_wins_top"`
	Exclude       []string `yaml:"exclude"`
	Renderer      string   `yaml:"renderer"`
	AxeScriptURL  string   `yaml:"axe_script_url"`
	Statement     struct {
		OrgName      string `yaml:"org_name"`
		ContactName  string `yaml:"contact_name"`
		ContactEmail string `yaml:"contact_email"`
		SLADays      int    `yaml:"sla_days"`
	} `yaml:"statement"`
}

// envConfig is the environment overlay, applied after the file.
type envConfig struct {
	MaxPages     int           `env:"MAX_PAGES"`
	MaxDepth     int           `env:"MAX_DEPTH"`
	Workers      int           `env:"WORKERS"`
	PageTimeout  time.Duration `env:"PAGE_TIMEOUT"`
	Deadline     time.Duration `env:"DEADLINE"`
	Renderer     string        `env:"RENDERER"`
	AxeScriptURL string        `env:"AXE_SCRIPT_URL"`
	OrgName      string        `env:"ORG_NAME"`
	ContactEmail string        `env:"CONTACT_EMAIL"`
}

// Loader resolves configuration from dir/.a11yscan.yaml plus A11YSCAN_*
// environment variables.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Load returns the merged configuration. A missing file is not an error;
// defaults carry through. SeedURL is never read from file or environment,
// it always comes from the command line.
func (l *Loader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fine, defaults apply
	case err != nil:
		return domain.Config{}, err
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		if err := applyFile(&cfg, fc); err != nil {
			return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
		}
	}

	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "A11YSCAN_"}); err != nil {
		return domain.Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	applyEnv(&cfg, ec)

	return cfg, nil
}

func applyFile(cfg *domain.Config, fc fileConfig) error {
	if fc.MaxPages > 0 {
		cfg.MaxPages = fc.MaxPages
	}
	if fc.MaxDepth > 0 {
		cfg.MaxDepth = fc.MaxDepth
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if fc.QuickWinsTop > 0 {
		cfg.QuickWinsTopN = fc.QuickWinsTop
	}
	if len(fc.Exclude) > 0 {
		cfg.ExcludePatterns = fc.Exclude
	}
	if fc.Renderer != "" {
		cfg.Renderer = fc.Renderer
	}
	if fc.AxeScriptURL != "" {
		cfg.AxeScriptURL = fc.AxeScriptURL
	}
	if fc.PageTimeout != "" {
		d, err := time.ParseDuration(fc.PageTimeout)
		if err != nil {
			return fmt.Errorf("page_timeout: %w", err)
		}
		cfg.PageTimeout = d
	}
	if fc.Deadline != "" {
		d, err := time.ParseDuration(fc.Deadline)
		if err != nil {
			return fmt.Errorf("deadline: %w", err)
		}
		cfg.Deadline = d
	}
	if fc.Statement.OrgName != "" {
		cfg.Statement.OrgName = fc.Statement.OrgName
	}
	if fc.Statement.ContactName != "" {
		cfg.Statement.ContactName = fc.Statement.ContactName
	}
	if fc.Statement.ContactEmail != "" {
		cfg.Statement.ContactEmail = fc.Statement.ContactEmail
	}
	if fc.Statement.SLADays > 0 {
		cfg.Statement.SLADays = fc.Statement.SLADays
	}
	return nil
}

func applyEnv(cfg *domain.Config, ec envConfig) {
	if ec.MaxPages > 0 {
		cfg.MaxPages = ec.MaxPages
	}
	if ec.MaxDepth > 0 {
		cfg.MaxDepth = ec.MaxDepth
	}
	if ec.Workers > 0 {
		cfg.Workers = ec.Workers
	}
	if ec.PageTimeout > 0 {
		cfg.PageTimeout = ec.PageTimeout
	}
	if ec.Deadline > 0 {
		cfg.Deadline = ec.Deadline
	}
	if ec.Renderer != "" {
		cfg.Renderer = ec.Renderer
	}
	if ec.AxeScriptURL != "" {
		cfg.AxeScriptURL = ec.AxeScriptURL
	}
	if ec.OrgName != "" {
		cfg.Statement.OrgName = ec.OrgName
	}
	if ec.ContactEmail != "" {
		cfg.Statement.ContactEmail = ec.ContactEmail
	}
}
