package docpress

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContentFile(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestLoadPagesParsesFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "workers/guide.md", `---
title: Deploy a Worker
description: How to deploy.
pcx_content_type: how-to
products:
  - pages
tags:
  - wrangler
updated: 2026-02-01
---

Body text.
`)

	pages, err := LoadPages(dir)
	if err != nil {
		t.Fatalf("LoadPages failed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if p.Slug != "workers/guide" {
		t.Errorf("Slug = %q, want workers/guide", p.Slug)
	}
	if p.Title != "Deploy a Worker" || p.Description != "How to deploy." {
		t.Errorf("title/description = %q / %q", p.Title, p.Description)
	}
	if p.ContentType != "how-to" {
		t.Errorf("ContentType = %q", p.ContentType)
	}
	if len(p.Products) != 1 || p.Products[0] != "pages" {
		t.Errorf("Products = %v", p.Products)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "wrangler" {
		t.Errorf("Tags = %v", p.Tags)
	}
	if p.Updated == nil || p.Updated.Format("2006-01-02") != "2026-02-01" {
		t.Errorf("Updated = %v", p.Updated)
	}
	if !strings.Contains(p.Body, "Body text.") {
		t.Errorf("Body = %q", p.Body)
	}
	if len(p.HeadTags) != 1 || p.HeadTags[0].Name != "title" || p.HeadTags[0].Content != "Deploy a Worker" {
		t.Errorf("seeded HeadTags = %+v, want single title descriptor", p.HeadTags)
	}
}

func TestSlugDerivation(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", ""},
		{"workers/index.md", "workers"},
		{"workers/guide.md", "workers/guide"},
		{"workers/changelog/index.md", "workers/changelog"},
	}
	for _, tt := range tests {
		if got := slugFromPath(tt.rel); got != tt.want {
			t.Errorf("slugFromPath(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestHeadExtrasSeedAfterTitle(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "index.md", `---
title: Home
head:
  - tag: meta
    attrs:
      name: generator
    content: docpress
  - tag: link
    attrs:
      rel: me
      href: https://example.com
---
`)

	pages, err := LoadPages(dir)
	if err != nil {
		t.Fatalf("LoadPages failed: %v", err)
	}
	tags := pages[0].HeadTags
	if len(tags) != 3 {
		t.Fatalf("got %d head tags, want 3", len(tags))
	}
	if tags[0].Name != "title" {
		t.Errorf("first tag = %+v, want title", tags[0])
	}
	if tags[1].Attrs["name"] != "generator" || tags[1].Content != "docpress" {
		t.Errorf("meta extra = %+v", tags[1])
	}
	if tags[2].Name != "link" || tags[2].Attrs["rel"] != "me" {
		t.Errorf("link extra = %+v", tags[2])
	}
}

func TestMissingTitleFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "bad.md", "---\ndescription: no title here\n---\n")

	_, err := LoadPages(dir)
	if err == nil || !strings.Contains(err.Error(), "missing title") {
		t.Fatalf("LoadPages error = %v, want missing title", err)
	}
}

func TestMalformedFrontMatterFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "bad.md", "---\ntitle: [unclosed\n---\n")

	if _, err := LoadPages(dir); err == nil {
		t.Fatal("LoadPages should fail on malformed front matter")
	}
}

func TestFindPageNotFound(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "index.md", "---\ntitle: Home\n---\n")

	pages, err := LoadPages(dir)
	if err != nil {
		t.Fatalf("LoadPages failed: %v", err)
	}
	if _, err := FindPage(pages, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindPage error = %v, want ErrNotFound", err)
	}
	if p, err := FindPage(pages, ""); err != nil || p.Title != "Home" {
		t.Errorf("FindPage(\"\") = %v, %v", p, err)
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []string{"2026-02-01", "2026/02/01", "2026-02-01T12:30:00Z"}
	for _, v := range tests {
		got, err := parseDate(v)
		if err != nil {
			t.Errorf("parseDate(%q) failed: %v", v, err)
			continue
		}
		if got.Year() != 2026 || got.Month() != 2 || got.Day() != 1 {
			t.Errorf("parseDate(%q) = %v", v, got)
		}
	}
	if _, err := parseDate("last tuesday"); err == nil {
		t.Error("parseDate should reject unrecognized dates")
	}
}

func TestSplitFrontMatterWithoutDelimiter(t *testing.T) {
	fm, body := splitFrontMatter("just a body\n")
	if fm != "" || body != "just a body\n" {
		t.Errorf("splitFrontMatter = %q, %q", fm, body)
	}
}
