package docpress

import (
	"context"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// HeadTags serializes assembled head descriptors in order. Attribute
// keys are sorted so output is stable; for meta tags the Content field
// becomes the content attribute, emitted last.
func HeadTags(tags []Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, t := range tags {
			writeTag(&b, t)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTag(b *strings.Builder, t Tag) {
	switch t.Name {
	case "title":
		b.WriteString("<title>")
		b.WriteString(html.EscapeString(t.Content))
		b.WriteString("</title>\n")
	case "meta":
		b.WriteString("<meta")
		writeAttrs(b, t.Attrs)
		if t.Content != "" {
			b.WriteString(` content="`)
			b.WriteString(html.EscapeString(t.Content))
			b.WriteString(`"`)
		}
		b.WriteString(">\n")
	case "link":
		b.WriteString("<link")
		writeAttrs(b, t.Attrs)
		b.WriteString(">\n")
	}
}

func writeAttrs(b *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[k]))
		b.WriteString(`"`)
	}
}

// renderToFile writes a templ component to path, creating parent
// directories as needed.
func renderToFile(ctx context.Context, path string, cmp templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cmp.Render(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
