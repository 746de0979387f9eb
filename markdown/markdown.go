// Package markdown renders documentation page bodies to HTML with
// goldmark, highlighting fenced code blocks with chroma, and extracts
// plain text for description derivation.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// markdownInstance is initialized once and reused. The parser
// configuration never changes and goldmark.Markdown is safe to share;
// parsing creates per-call state via Parse(reader).
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func instance() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(
					util.Prioritized(&codeBlockRenderer{}, 200),
				),
			),
		)
	})
	return markdownInstance
}

// ugcPolicy strips scripts and event handlers from untrusted HTML
// fragments before they enter feeds.
var ugcPolicy = bluemonday.UGCPolicy()

// Render converts markdown source to HTML.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := instance().Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return buf.String(), nil
}

// Plain extracts the text content of src, one paragraph per line pair.
// Headings, code blocks, and other structure are dropped; only paragraph
// text survives. Used for description derivation and the llms.txt index.
func Plain(src string) string {
	source := []byte(src)
	doc := instance().Parser().Parse(text.NewReader(source))
	var parts []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Paragraph); ok {
			if s := nodeText(n, source); s != "" {
				parts = append(parts, s)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(parts, "\n\n")
}

// SanitizeFragment runs an HTML fragment through the UGC policy.
func SanitizeFragment(fragment string) string {
	return ugcPolicy.Sanitize(fragment)
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// codeBlockRenderer replaces goldmark's fenced code block output with
// chroma-highlighted HTML. Blocks with no language or an unknown one
// fall back to a plain escaped <pre><code>.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *codeBlockRenderer) renderFencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	lang := string(n.Language(source))

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	if err := highlight(w, code.String(), lang); err != nil {
		writePlainCode(w, code.String(), lang)
	}
	return ast.WalkContinue, nil
}

var errNoLexer = fmt.Errorf("markdown: no lexer")

func highlight(w io.Writer, code, lang string) error {
	if lang == "" {
		return errNoLexer
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return errNoLexer
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return err
	}
	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.Format(w, style, iterator)
}

func writePlainCode(w io.Writer, code, lang string) {
	class := ""
	if lang != "" {
		class = ` class="language-` + html.EscapeString(lang) + `"`
	}
	fmt.Fprintf(w, "<pre><code%s>%s</code></pre>\n", class, html.EscapeString(code))
}
