package docpress

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap emits sitemap.xml for the page set. Pages with an
// external link are excluded: they are noindex redirect stubs.
func WriteSitemap(w io.Writer, pages []*Page, pageURL func(slug string) string) error {
	var urls []sitemapURL
	for _, p := range pages {
		if p.ExternalLink != "" {
			continue
		}
		u := sitemapURL{Loc: pageURL(p.Slug)}
		if p.Updated != nil {
			u.LastMod = p.Updated.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

// WriteRobots emits an allow-all robots.txt pointing at the sitemap.
func WriteRobots(w io.Writer, origin string) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", origin)
	return err
}

// WriteLLMs emits llms.txt, a markdown index of the site for LLM
// consumers: one link-plus-description line per page, grouped by product
// group when the page's product declares one.
func WriteLLMs(w io.Writer, cfg SiteConfig, pages []*Page, products Products, pageURL func(slug string) string) error {
	if _, err := fmt.Fprintf(w, "# %s\n", cfg.Name); err != nil {
		return err
	}
	if cfg.Description != "" {
		if _, err := fmt.Fprintf(w, "\n> %s\n", cfg.Description); err != nil {
			return err
		}
	}

	grouped := map[string][]*Page{}
	for _, p := range pages {
		if p.ExternalLink != "" {
			continue
		}
		group := ""
		if product := products.Lookup(productKey(p.Slug)); product != nil {
			group = product.Product.Group
		}
		grouped[group] = append(grouped[group], p)
	}
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups) // ungrouped pages sort first under the bare list

	for _, g := range groups {
		if g != "" {
			if _, err := fmt.Fprintf(w, "\n## %s\n", g); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for _, p := range grouped[g] {
			line := fmt.Sprintf("- [%s](%s)", p.Title, pageURL(p.Slug))
			if p.Description != "" {
				line += ": " + p.Description
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
