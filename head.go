package docpress

import (
	"strconv"
	"strings"
	"time"
)

// Assembler derives the final head-tag sequence for a page. It applies a
// fixed, ordered table of rules; each rule is a pure function over the
// tag slice so rules can be tested in isolation, and later rules see the
// output of earlier ones. Apply must run exactly once per page build —
// re-running it duplicates the append-only tags.
type Assembler struct {
	Origin   string           // site origin, no trailing slash
	Now      func() time.Time // build clock, injectable for tests
	Describe DescribeFunc     // fallback description derivation
}

type headRule func(a *Assembler, tags []Tag, page *Page, product *Product) ([]Tag, error)

// Rule order is fixed and load-bearing: output stability depends on it.
var headRules = []headRule{
	ruleTitle,
	ruleProductName,
	ruleProductGroup,
	ruleDescription,
	ruleContentType,
	ruleAdditionalProducts,
	rulePageTags,
	ruleLastReviewed,
	ruleChangelogFeed,
	ruleExternalRedirect,
}

// Apply folds the rule table over the page's seeded head tags and
// assigns the result. product may be nil when the page's first slug
// segment matches no product record; the product rules then skip.
func (a *Assembler) Apply(page *Page, product *Product) error {
	tags := page.HeadTags
	for _, rule := range headRules {
		out, err := rule(a, tags, page, product)
		if err != nil {
			return err
		}
		tags = out
	}
	page.HeadTags = tags
	return nil
}

// ruleTitle appends the product's meta title to the page title. An
// existing title descriptor is rewritten in place (same position); when
// none exists a new one is appended, built from page.Title. Either way
// an og:title meta carrying the new title follows.
func ruleTitle(_ *Assembler, tags []Tag, page *Page, product *Product) ([]Tag, error) {
	if product == nil || product.Meta.Title == "" {
		return tags, nil
	}
	out := append([]Tag(nil), tags...)
	idx := -1
	for i, t := range out {
		if t.Name == "title" {
			idx = i
			break
		}
	}
	var newTitle string
	if idx >= 0 {
		newTitle = out[idx].Content + " · " + product.Meta.Title
		out[idx].Content = newTitle
	} else {
		newTitle = page.Title + " · " + product.Meta.Title
		out = append(out, TitleTag(newTitle))
	}
	return append(out, MetaProperty("og:title", newTitle)), nil
}

func ruleProductName(_ *Assembler, tags []Tag, _ *Page, product *Product) ([]Tag, error) {
	if product == nil || product.Product.Title == "" {
		return tags, nil
	}
	return append(tags,
		Meta("pcx_product", product.Product.Title),
		Meta("algolia_product_filter", product.Product.Title),
	), nil
}

func ruleProductGroup(_ *Assembler, tags []Tag, _ *Page, product *Product) ([]Tag, error) {
	if product == nil || product.Product.Group == "" {
		return tags, nil
	}
	return append(tags, Meta("pcx_content_group", product.Product.Group)), nil
}

// ruleDescription assigns the fallback description when the front matter
// left it empty. It appends no tags; a failing Describe collaborator
// fails the page build.
func ruleDescription(a *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if page.Description != "" || a.Describe == nil {
		return tags, nil
	}
	desc, err := a.Describe(page)
	if err != nil {
		return nil, err
	}
	page.Description = desc
	return tags, nil
}

func ruleContentType(_ *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if page.ContentType == "" {
		return tags, nil
	}
	return append(tags,
		Meta("pcx_content_type", page.ContentType),
		Meta("algolia_content_type", page.ContentType),
	), nil
}

func ruleAdditionalProducts(_ *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if len(page.Products) == 0 {
		return tags, nil
	}
	return append(tags, Meta("pcx_additional_products", strings.Join(page.Products, ","))), nil
}

func rulePageTags(_ *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if len(page.Tags) == 0 {
		return tags, nil
	}
	return append(tags, Meta("pcx_tags", strings.Join(page.Tags, ","))), nil
}

// ruleLastReviewed tags the page with its age in calendar days. The
// value is negative when the updated date lies in the future relative
// to the build clock.
func ruleLastReviewed(a *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if page.Updated == nil {
		return tags, nil
	}
	days := calendarDaysBetween(a.Now(), *page.Updated)
	return append(tags, Meta("pcx_last_reviewed", strconv.Itoa(days))), nil
}

func ruleChangelogFeed(a *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if page.ContentType != "changelog" {
		return tags, nil
	}
	href := a.Origin + "/" + page.Slug + "/index.xml"
	return append(tags, LinkTag(map[string]string{
		"rel":  "alternate",
		"type": "application/rss+xml",
		"href": href,
	})), nil
}

// ruleExternalRedirect marks redirect stub pages: noindex plus an
// immediate meta refresh to the external target.
func ruleExternalRedirect(_ *Assembler, tags []Tag, page *Page, _ *Product) ([]Tag, error) {
	if page.ExternalLink == "" {
		return tags, nil
	}
	return append(tags,
		Meta("robots", "noindex"),
		MetaHTTPEquiv("refresh", "0; url="+page.ExternalLink),
	), nil
}

// calendarDaysBetween returns now minus updated in whole calendar days,
// comparing civil dates in UTC so the time of day never shifts the count.
func calendarDaysBetween(now, updated time.Time) int {
	a := now.UTC()
	b := updated.UTC()
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ad.Sub(bd).Hours() / 24)
}
