package views

import (
	"encoding/json"
	"strings"
)

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block from site values.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL,
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ArticleJsonLD produces a Schema.org TechArticle JSON-LD block for a
// documentation page.
func ArticleJsonLD(site Site, page PageMeta) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "TechArticle",
		"headline":    page.Title,
		"description": page.Description,
		"url":         page.URL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   page.URL,
		},
	}
	if page.Updated != "" {
		data["dateModified"] = page.Updated
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	if len(page.Tags) > 0 {
		data["keywords"] = JoinTags(page.Tags)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
