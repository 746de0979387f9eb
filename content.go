package docpress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a requested page does not exist.
var ErrNotFound = errors.New("docpress: not found")

// dateLayouts are accepted for the updated front matter field, most
// specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006/01/02"}

type frontMatter struct {
	Title        string      `yaml:"title"`
	Description  string      `yaml:"description"`
	ContentType  string      `yaml:"pcx_content_type"`
	Products     []string    `yaml:"products"`
	Tags         []string    `yaml:"tags"`
	Updated      string      `yaml:"updated"`
	ExternalLink string      `yaml:"external_link"`
	Head         []headExtra `yaml:"head"`
}

// headExtra is an author-supplied head descriptor seeded after the title.
type headExtra struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs"`
	Content string            `yaml:"content"`
}

// LoadPages walks dir for .md files and returns the parsed pages sorted
// by slug. A malformed page fails the whole load with an error naming
// the file.
func LoadPages(dir string) ([]*Page, error) {
	var pages []*Page
	err := forEachPageFile(dir, func(path, rel string) error {
		page, err := parsePage(path, rel)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

// FindPage returns the page with the given slug, or ErrNotFound.
func FindPage(pages []*Page, slug string) (*Page, error) {
	for _, p := range pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// forEachPageFile calls fn for every .md file under dir with its full
// and content-relative paths.
func forEachPageFile(dir string, fn func(path, rel string) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return fn(path, filepath.ToSlash(rel))
	})
}

// parsePage reads one markdown file into a Page. HeadTags is seeded
// with exactly one title descriptor followed by any head extras from
// front matter, which keeps the title-uniqueness invariant the
// assembler's rewrite rule relies on.
func parsePage(path, rel string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return nil, fmt.Errorf("docpress: parse front matter %s: %w", rel, err)
		}
	}
	if strings.TrimSpace(front.Title) == "" {
		return nil, fmt.Errorf("docpress: page %s: missing title", rel)
	}

	page := &Page{
		Slug:         slugFromPath(rel),
		Title:        strings.TrimSpace(front.Title),
		Description:  strings.TrimSpace(front.Description),
		Body:         body,
		Path:         rel,
		ContentType:  strings.TrimSpace(front.ContentType),
		Products:     FilterEmpty(front.Products),
		Tags:         FilterEmpty(front.Tags),
		ExternalLink: strings.TrimSpace(front.ExternalLink),
	}
	if front.Updated != "" {
		t, err := parseDate(front.Updated)
		if err != nil {
			return nil, fmt.Errorf("docpress: page %s: %w", rel, err)
		}
		page.Updated = &t
	}

	page.HeadTags = []Tag{TitleTag(page.Title)}
	for _, extra := range front.Head {
		page.HeadTags = append(page.HeadTags, Tag{
			Name:    extra.Tag,
			Attrs:   extra.Attrs,
			Content: extra.Content,
		})
	}
	return page, nil
}

// slugFromPath derives the page slug from its content-relative path.
// index.md maps to the directory slug; the root index.md is the empty
// slug (the site home).
func slugFromPath(rel string) string {
	slug := strings.TrimSuffix(rel, ".md")
	if slug == "index" {
		return ""
	}
	slug = strings.TrimSuffix(slug, "/index")
	return slug
}

// splitFrontMatter separates a leading --- delimited YAML block from the
// markdown body. Files without front matter return the input unchanged
// as the body.
func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}
