package docpress

import (
	"strings"
	"unicode/utf8"

	"github.com/edgewool/docpress/markdown"
)

// DescribeFunc derives a description for a page whose front matter left
// the field empty.
type DescribeFunc func(page *Page) (string, error)

// maxDescriptionLen bounds derived descriptions, which end up in meta
// description tags and search indexes.
const maxDescriptionLen = 160

// DefaultDescribe builds a description from the first paragraph of the
// page body: whitespace collapsed, truncated on a word boundary with a
// trailing ellipsis when cut. Redirect stubs with empty bodies yield "".
func DefaultDescribe(page *Page) (string, error) {
	plain := markdown.Plain(page.Body)
	first := plain
	if i := strings.Index(plain, "\n\n"); i >= 0 {
		first = plain[:i]
	}
	return truncateWords(strings.Join(strings.Fields(first), " "), maxDescriptionLen), nil
}

// truncateWords shortens s to at most max runes, cutting at the last
// word boundary that fits and appending an ellipsis.
func truncateWords(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := max
	for i := max; i > 0; i-- {
		if runes[i] == ' ' {
			cut = i
			break
		}
	}
	return strings.TrimRight(string(runes[:cut]), " ") + "…"
}
