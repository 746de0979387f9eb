package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Document is the default HTML shell. The head component carries the
// assembled head tags (title included); the body component carries the
// rendered page markdown.
func Document(site Site, page PageMeta, head, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<link rel=\"stylesheet\" href=\"/docpress.css\">\n")
		if page.URL != "" {
			b.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(page.URL) + "\">\n")
			b.WriteString("<meta property=\"og:url\" content=\"" + html.EscapeString(page.URL) + "\">\n")
		}
		if page.OGType != "" {
			b.WriteString("<meta property=\"og:type\" content=\"" + html.EscapeString(page.OGType) + "\">\n")
		}
		if page.Description != "" {
			b.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(page.Description) + "\">\n")
			b.WriteString("<meta property=\"og:description\" content=\"" + html.EscapeString(page.Description) + "\">\n")
		}
		b.WriteString("<script type=\"application/ld+json\">" + WebsiteJsonLD(site) + "</script>\n")
		if page.OGType == "article" {
			b.WriteString("<script type=\"application/ld+json\">" + ArticleJsonLD(site, page) + "</script>\n")
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := head.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</head>\n<body>\n")
		b.WriteString("<header class=\"site-header\">\n")
		b.WriteString("<a class=\"site-name\" href=\"/\">" + html.EscapeString(site.Name) + "</a>\n")
		if page.ProductTitle != "" {
			b.WriteString("<nav class=\"product-nav\">")
			if page.ProductURL != "" {
				b.WriteString("<a href=\"" + html.EscapeString(page.ProductURL) + "\">" + html.EscapeString(page.ProductTitle) + "</a>")
			} else {
				b.WriteString("<span>" + html.EscapeString(page.ProductTitle) + "</span>")
			}
			if page.DashboardLink != "" {
				b.WriteString(` <a class="dashboard-link" href="` + html.EscapeString(page.DashboardLink) + `" rel="noopener">Dashboard</a>`)
			}
			b.WriteString("</nav>\n")
		}
		b.WriteString("</header>\n<main>\n<article>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</article>\n</main>\n<footer class=\"site-footer\">\n")
		if page.Updated != "" {
			b.WriteString("<p>Last reviewed " + html.EscapeString(page.Updated) + "</p>\n")
		}
		if site.Author != "" {
			b.WriteString("<p>" + html.EscapeString(site.Author) + "</p>\n")
		}
		b.WriteString("</footer>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// NotFound renders the 404 page emitted when not_found_handling is
// 404-page.
func NotFound(site Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString("<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<meta name=\"robots\" content=\"noindex\">\n")
		b.WriteString("<link rel=\"stylesheet\" href=\"/docpress.css\">\n")
		b.WriteString("<title>Page not found · " + html.EscapeString(site.Name) + "</title>\n")
		b.WriteString("</head>\n<body>\n<main class=\"not-found\">\n")
		b.WriteString("<h1>Page not found</h1>\n")
		b.WriteString("<p><a href=\"/\">Back to " + html.EscapeString(site.Name) + "</a></p>\n")
		b.WriteString("</main>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
