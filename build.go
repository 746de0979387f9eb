package docpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/edgewool/docpress/markdown"
	"github.com/edgewool/docpress/views"
)

// Build generates the whole site into Config.OutputDir. Pages are built
// sequentially; the head assembler runs exactly once per page. A page
// failure aborts the build with an error naming the page.
func (s *Site) Build(ctx context.Context) error {
	cfg := s.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	products, err := LoadProducts(cfg.ProductsDir)
	if err != nil {
		return fmt.Errorf("docpress: load products: %w", err)
	}
	changelogs, err := LoadChangelogs(cfg.ChangelogsDir)
	if err != nil {
		return fmt.Errorf("docpress: load changelogs: %w", err)
	}
	pages, err := LoadPages(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("docpress: load pages: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.buildPage(ctx, page, products); err != nil {
			return fmt.Errorf("docpress: build page %s: %w", page.Path, err)
		}
	}

	for _, page := range pages {
		if page.ContentType != "changelog" {
			continue
		}
		if err := s.writeChangelogFeed(page, changelogs); err != nil {
			return fmt.Errorf("docpress: feed for %s: %w", page.Slug, err)
		}
	}

	if err := s.writeSiteFiles(pages, products); err != nil {
		return err
	}

	if cfg.NotFoundHandling == NotFoundPage {
		notFound := s.views.NotFound(s.siteView())
		if err := renderToFile(ctx, filepath.Join(cfg.OutputDir, "404.html"), notFound); err != nil {
			return fmt.Errorf("docpress: write 404 page: %w", err)
		}
	}

	if err := s.copyStatic(); err != nil {
		return fmt.Errorf("docpress: static assets: %w", err)
	}
	return s.writeStylesheet()
}

// buildPage assembles head metadata, renders the body, and writes the
// output HTML file for one page.
func (s *Site) buildPage(ctx context.Context, page *Page, products Products) error {
	product := products.Lookup(productKey(page.Slug))

	asm := Assembler{
		Origin:   s.Config.Origin,
		Now:      s.now,
		Describe: s.describe,
	}
	if err := asm.Apply(page, product); err != nil {
		return err
	}

	bodyHTML, err := markdown.Render(page.Body)
	if err != nil {
		return err
	}

	meta := views.PageMeta{
		Title:       page.Title,
		Description: page.Description,
		URL:         s.PageURL(page.Slug),
		OGType:      "article",
		Tags:        page.Tags,
	}
	if page.Slug == "" {
		meta.OGType = "website"
	}
	if page.Updated != nil {
		meta.Updated = page.Updated.Format("2006-01-02")
	}
	if product != nil {
		meta.ProductTitle = product.Product.Title
		meta.ProductURL = product.Product.URL
		meta.DashboardLink = product.Resources.DashboardLink
	}

	doc := s.views.Document(s.siteView(), meta, HeadTags(page.HeadTags), templ.Raw(bodyHTML))
	return renderToFile(ctx, s.outputPath(page.Slug), doc)
}

// writeChangelogFeed emits <out>/<slug>/index.xml for a changelog page,
// matching the href the assembler's feed-link rule advertises.
func (s *Site) writeChangelogFeed(page *Page, changelogs Changelogs) error {
	cl := changelogs.Lookup(productKey(page.Slug))
	path := filepath.Join(s.Config.OutputDir, filepath.FromSlash(page.Slug), "index.xml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFeed(f, s.Config, page, cl, s.PageURL(page.Slug)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Site) writeSiteFiles(pages []*Page, products Products) error {
	write := func(name string, fn func(f *os.File) error) error {
		f, err := os.Create(filepath.Join(s.Config.OutputDir, name))
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("docpress: write %s: %w", name, err)
		}
		return f.Close()
	}
	if err := write("sitemap.xml", func(f *os.File) error {
		return WriteSitemap(f, pages, s.PageURL)
	}); err != nil {
		return err
	}
	if err := write("robots.txt", func(f *os.File) error {
		return WriteRobots(f, s.Config.Origin)
	}); err != nil {
		return err
	}
	return write("llms.txt", func(f *os.File) error {
		return WriteLLMs(f, s.Config, pages, products, s.PageURL)
	})
}

// PageURL returns the canonical URL for a slug under the configured
// html_handling mode.
func (s *Site) PageURL(slug string) string {
	origin := s.Config.Origin
	if slug == "" {
		return origin + "/"
	}
	switch s.Config.HTMLHandling {
	case HTMLDropTrailingSlash, HTMLNone:
		return origin + "/" + slug
	default: // auto-trailing-slash, force-trailing-slash
		return BuildURL(origin, slug)
	}
}

// outputPath maps a slug to its output file. Trailing-slash modes emit
// <slug>/index.html; drop-trailing-slash emits <slug>.html.
func (s *Site) outputPath(slug string) string {
	out := s.Config.OutputDir
	if slug == "" {
		return filepath.Join(out, "index.html")
	}
	if s.Config.HTMLHandling == HTMLDropTrailingSlash {
		return filepath.Join(out, filepath.FromSlash(slug)+".html")
	}
	return filepath.Join(out, filepath.FromSlash(slug), "index.html")
}
