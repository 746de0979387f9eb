// Package docpress is a static documentation site generator built with
// Go, goldmark, and templ. It loads markdown pages with YAML front
// matter, derives per-page head metadata through an ordered rule table,
// and emits a complete site: HTML pages, changelog RSS feeds, sitemap,
// robots.txt, and an llms.txt index.
//
// Users provide their own templ components via the ViewFuncs struct;
// docpress handles loading, metadata assembly, and file emission.
package docpress

import (
	"os"
	"time"

	"github.com/a-h/templ"

	"github.com/edgewool/docpress/views"
)

// ViewFuncs holds user-provided templ components called when rendering
// pages. Nil fields fall back to the defaults in the views package.
type ViewFuncs struct {
	Document func(site views.Site, page views.PageMeta, head, body templ.Component) templ.Component
	NotFound func(site views.Site) templ.Component
}

// Site is the central docpress application: configuration plus the
// collaborators a build needs (views, description derivation, clock).
type Site struct {
	Config SiteConfig

	views    ViewFuncs
	describe DescribeFunc
	now      func() time.Time
}

// New creates a Site with the given configuration. Defaults are applied
// to the config; options override the view components, the description
// collaborator, and the build clock.
func New(cfg SiteConfig, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config: cfg,
		views: ViewFuncs{
			Document: views.Document,
			NotFound: views.NotFound,
		},
		describe: DefaultDescribe,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Site) siteView() views.Site {
	return views.Site{
		Name:        s.Config.Name,
		URL:         s.Config.Origin + "/",
		Description: s.Config.Description,
		Author:      s.Config.Author,
	}
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty. The CLI uses it to seat flag defaults.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
