package docpress

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// html_handling values: how page slugs map to output files and URLs.
const (
	HTMLAutoTrailingSlash  = "auto-trailing-slash"
	HTMLForceTrailingSlash = "force-trailing-slash"
	HTMLDropTrailingSlash  = "drop-trailing-slash"
	HTMLNone               = "none"
)

// not_found_handling values: what artifact to emit for missing pages.
const (
	NotFoundNone = "none"
	NotFoundPage = "404-page"
	NotFoundSPA  = "single-page-application"
)

// SiteConfig holds all configuration for a docpress site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Docs")
	Origin      string `yaml:"origin"`      // Canonical origin, no trailing slash
	Description string `yaml:"description"` // Site description for feeds and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	ContentDir    string `yaml:"content_dir"`    // Markdown pages (default "content")
	ProductsDir   string `yaml:"products_dir"`   // Product records (default "products")
	ChangelogsDir string `yaml:"changelogs_dir"` // Changelog records (default "changelogs")
	StaticDir     string `yaml:"static_dir"`     // User static assets (default "static")
	OutputDir     string `yaml:"output_dir"`     // Build output (default "public")

	HTMLHandling     string `yaml:"html_handling"`     // default auto-trailing-slash
	NotFoundHandling string `yaml:"not_found_handling"` // default 404-page
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Docs"
	}
	if c.Origin == "" {
		c.Origin = "http://localhost:8080"
	}
	c.Origin = strings.TrimSuffix(c.Origin, "/")
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.ProductsDir == "" {
		c.ProductsDir = "products"
	}
	if c.ChangelogsDir == "" {
		c.ChangelogsDir = "changelogs"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.HTMLHandling == "" {
		c.HTMLHandling = HTMLAutoTrailingSlash
	}
	if c.NotFoundHandling == "" {
		c.NotFoundHandling = NotFoundPage
	}
}

// Validate checks the two routing enums against their value sets.
func (c *SiteConfig) Validate() error {
	switch c.HTMLHandling {
	case HTMLAutoTrailingSlash, HTMLForceTrailingSlash, HTMLDropTrailingSlash, HTMLNone:
	default:
		return fmt.Errorf("docpress: invalid html_handling %q", c.HTMLHandling)
	}
	switch c.NotFoundHandling {
	case NotFoundNone, NotFoundPage, NotFoundSPA:
	default:
		return fmt.Errorf("docpress: invalid not_found_handling %q", c.NotFoundHandling)
	}
	return nil
}

// LoadConfig reads a site config from a YAML file, applies defaults,
// and validates it.
func LoadConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("docpress: read config: %w", err)
	}
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("docpress: parse config %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithViews overrides individual view components. Nil fields keep the
// defaults from the views package.
func WithViews(v ViewFuncs) Option {
	return func(s *Site) {
		if v.Document != nil {
			s.views.Document = v.Document
		}
		if v.NotFound != nil {
			s.views.NotFound = v.NotFound
		}
	}
}

// WithDescribe replaces the fallback description derivation.
func WithDescribe(fn DescribeFunc) Option {
	return func(s *Site) {
		s.describe = fn
	}
}

// WithNow fixes the build clock, primarily for tests and reproducible
// builds.
func WithNow(fn func() time.Time) Option {
	return func(s *Site) {
		s.now = fn
	}
}
