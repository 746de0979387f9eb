package docpress

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edgewool/docpress/markdown"
)

// Changelog holds release-note entries for one product, loaded from a
// YAML file keyed by basename (the page's first slug segment).
type Changelog struct {
	Key         string           `yaml:"-"`
	Link        string           `yaml:"link"`
	ProductName string           `yaml:"product_name"`
	ProductLink string           `yaml:"product_link"`
	Entries     []ChangelogEntry `yaml:"entries"`
}

// ChangelogEntry is a single dated release note. Description is
// markdown; it is rendered and sanitized before entering a feed.
type ChangelogEntry struct {
	PublishDate string `yaml:"publish_date"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Changelogs is the changelog collection, keyed like Products.
type Changelogs map[string]*Changelog

// LoadChangelogs reads every .yaml file in dir. A missing directory
// yields an empty collection.
func LoadChangelogs(dir string) (Changelogs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Changelogs{}, nil
		}
		return nil, err
	}
	logs := Changelogs{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var cl Changelog
		if err := yaml.Unmarshal(data, &cl); err != nil {
			return nil, fmt.Errorf("docpress: parse changelog %s: %w", name, err)
		}
		cl.Key = strings.TrimSuffix(name, ".yaml")
		logs[cl.Key] = &cl
	}
	return logs, nil
}

// Lookup returns the changelog for key, or nil when absent.
func (c Changelogs) Lookup(key string) *Changelog {
	return c[key]
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// WriteFeed emits the RSS 2.0 feed for a changelog page at pageURL.
// Items are ordered by publish date descending; each description is the
// sanitized HTML rendering of the entry markdown. cl may be nil, which
// produces a valid empty feed.
func WriteFeed(w io.Writer, cfg SiteConfig, page *Page, cl *Changelog, pageURL string) error {
	title := page.Title
	var entries []ChangelogEntry
	if cl != nil {
		if cl.ProductName != "" {
			title = cl.ProductName + " - " + page.Title
		}
		entries = append(entries, cl.Entries...)
	}
	// Order by parsed date so entries mixing date layouts still sort
	// newest first; unparseable dates fall back to the raw string.
	sort.SliceStable(entries, func(i, j int) bool {
		ti, erri := parseDate(entries[i].PublishDate)
		tj, errj := parseDate(entries[j].PublishDate)
		if erri != nil || errj != nil {
			return entries[i].PublishDate > entries[j].PublishDate
		}
		return ti.After(tj)
	})

	items := make([]rssItem, 0, len(entries))
	for _, e := range entries {
		rendered, err := markdown.Render(e.Description)
		if err != nil {
			return fmt.Errorf("docpress: render changelog entry %q: %w", e.Title, err)
		}
		pubDate := ""
		if t, err := parseDate(e.PublishDate); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := pageURL + "#" + Slugify(e.Title)
		items = append(items, rssItem{
			Title:       e.Title,
			Link:        link,
			Description: markdown.SanitizeFragment(rendered),
			PubDate:     pubDate,
			GUID:        link,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        pageURL,
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(feed)
}
