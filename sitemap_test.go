package docpress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func testPageURL(slug string) string {
	if slug == "" {
		return "https://docs.example.com/"
	}
	return "https://docs.example.com/" + slug + "/"
}

func TestWriteSitemapExcludesExternalPages(t *testing.T) {
	updated := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	pages := []*Page{
		{Slug: "", Title: "Home"},
		{Slug: "workers", Title: "Workers", Updated: &updated},
		{Slug: "workers/sdk", Title: "SDK", ExternalLink: "https://example.com"},
	}

	var buf bytes.Buffer
	if err := WriteSitemap(&buf, pages, testPageURL); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<loc>https://docs.example.com/</loc>") {
		t.Errorf("home URL missing: %s", out)
	}
	if !strings.Contains(out, "<loc>https://docs.example.com/workers/</loc>") {
		t.Errorf("workers URL missing: %s", out)
	}
	if strings.Contains(out, "workers/sdk") {
		t.Errorf("external redirect page should be excluded: %s", out)
	}
	if !strings.Contains(out, "<lastmod>2026-02-01</lastmod>") {
		t.Errorf("lastmod missing: %s", out)
	}
}

func TestWriteRobots(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRobots(&buf, "https://docs.example.com"); err != nil {
		t.Fatalf("WriteRobots failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Allow: /") {
		t.Errorf("allow rule missing: %s", out)
	}
	if !strings.Contains(out, "Sitemap: https://docs.example.com/sitemap.xml") {
		t.Errorf("sitemap line missing: %s", out)
	}
}

func TestWriteLLMsGroupsByProductGroup(t *testing.T) {
	products := Products{
		"workers": func() *Product {
			p := &Product{Key: "workers"}
			p.Product.Group = "Developer platform"
			return p
		}(),
	}
	pages := []*Page{
		{Slug: "", Title: "Home", Description: "Welcome."},
		{Slug: "workers", Title: "Workers", Description: "Serverless."},
		{Slug: "workers/sdk", Title: "SDK", ExternalLink: "https://example.com"},
	}

	var buf bytes.Buffer
	cfg := SiteConfig{Name: "Example Docs", Description: "All the docs."}
	if err := WriteLLMs(&buf, cfg, pages, products, testPageURL); err != nil {
		t.Fatalf("WriteLLMs failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Example Docs\n") {
		t.Errorf("header missing: %s", out)
	}
	if !strings.Contains(out, "> All the docs.") {
		t.Errorf("site description missing: %s", out)
	}
	if !strings.Contains(out, "## Developer platform") {
		t.Errorf("group heading missing: %s", out)
	}
	if !strings.Contains(out, "- [Workers](https://docs.example.com/workers/): Serverless.") {
		t.Errorf("workers line missing: %s", out)
	}
	if strings.Contains(out, "SDK") {
		t.Errorf("external redirect page should be excluded: %s", out)
	}
}
