package docpress

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadChangelogs(t *testing.T) {
	dir := t.TempDir()
	record := `link: /workers/changelog/
product_name: Workers
product_link: /workers/
entries:
  - publish_date: 2026-01-10
    title: Older release
    description: Plain note.
  - publish_date: 2026-02-20
    title: Newer release
    description: "**Bold** note."
`
	if err := os.WriteFile(filepath.Join(dir, "workers.yaml"), []byte(record), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	logs, err := LoadChangelogs(dir)
	if err != nil {
		t.Fatalf("LoadChangelogs failed: %v", err)
	}
	cl := logs.Lookup("workers")
	if cl == nil {
		t.Fatal("Lookup(workers) = nil")
	}
	if cl.ProductName != "Workers" || len(cl.Entries) != 2 {
		t.Errorf("changelog = %+v", cl)
	}
}

func TestWriteFeedSortsAndSanitizes(t *testing.T) {
	page := &Page{Slug: "workers/changelog", Title: "Changelog", ContentType: "changelog"}
	cl := &Changelog{
		ProductName: "Workers",
		Entries: []ChangelogEntry{
			{PublishDate: "2026-01-10", Title: "Older release", Description: "Plain note."},
			{PublishDate: "2026-02-20", Title: "Newer release", Description: "A note.<script>alert(1)</script>"},
		},
	}

	var buf bytes.Buffer
	cfg := SiteConfig{Description: "Site description"}
	err := WriteFeed(&buf, cfg, page, cl, "https://docs.example.com/workers/changelog/")
	if err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<rss version="2.0">`) {
		t.Errorf("missing rss element: %s", out)
	}
	if !strings.Contains(out, "<title>Workers - Changelog</title>") {
		t.Errorf("channel title missing: %s", out)
	}
	newer := strings.Index(out, "Newer release")
	older := strings.Index(out, "Older release")
	if newer < 0 || older < 0 || newer > older {
		t.Errorf("items not sorted newest first:\n%s", out)
	}
	if strings.Contains(out, "alert(1)") {
		t.Errorf("entry description not sanitized: %s", out)
	}
	// RFC1123Z pubDate for 2026-02-20 (a Friday).
	if !strings.Contains(out, "Fri, 20 Feb 2026") {
		t.Errorf("pubDate not RFC1123Z formatted: %s", out)
	}
	anchor := "https://docs.example.com/workers/changelog/#newer-release"
	if !strings.Contains(out, anchor) {
		t.Errorf("entry link %q missing: %s", anchor, out)
	}
}

func TestWriteFeedSortsMixedDateLayouts(t *testing.T) {
	page := &Page{Slug: "workers/changelog", Title: "Changelog", ContentType: "changelog"}
	cl := &Changelog{
		Entries: []ChangelogEntry{
			// Slash-layout date sorts after any dashed date when compared
			// as raw strings; the parsed dates must win.
			{PublishDate: "2026/01/02", Title: "January release", Description: "Older."},
			{PublishDate: "2026-02-20", Title: "February release", Description: "Newer."},
		},
	}

	var buf bytes.Buffer
	if err := WriteFeed(&buf, SiteConfig{}, page, cl, "https://docs.example.com/workers/changelog/"); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	out := buf.String()

	feb := strings.Index(out, "February release")
	jan := strings.Index(out, "January release")
	if feb < 0 || jan < 0 || feb > jan {
		t.Errorf("items not sorted by parsed date:\n%s", out)
	}
}

func TestWriteFeedNilChangelogIsEmptyFeed(t *testing.T) {
	page := &Page{Slug: "pages/changelog", Title: "Changelog", ContentType: "changelog"}
	var buf bytes.Buffer
	if err := WriteFeed(&buf, SiteConfig{}, page, nil, "https://docs.example.com/pages/changelog/"); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<item>") {
		t.Errorf("empty feed should have no items: %s", out)
	}
	if !strings.Contains(out, "<title>Changelog</title>") {
		t.Errorf("page title missing from empty feed: %s", out)
	}
}
