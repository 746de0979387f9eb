package docpress

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDefaultDescribeTakesFirstParagraph(t *testing.T) {
	page := &Page{Body: "# Heading\n\nFirst paragraph\nwith a soft break.\n\nSecond paragraph.\n"}
	got, err := DefaultDescribe(page)
	if err != nil {
		t.Fatalf("DefaultDescribe failed: %v", err)
	}
	if got != "First paragraph with a soft break." {
		t.Errorf("description = %q", got)
	}
}

func TestDefaultDescribeEmptyBody(t *testing.T) {
	got, err := DefaultDescribe(&Page{Body: ""})
	if err != nil {
		t.Fatalf("DefaultDescribe failed: %v", err)
	}
	if got != "" {
		t.Errorf("description = %q, want empty", got)
	}
}

func TestDefaultDescribeTruncatesOnWordBoundary(t *testing.T) {
	page := &Page{Body: strings.Repeat("lorem ipsum dolor sit amet ", 20)}
	got, err := DefaultDescribe(page)
	if err != nil {
		t.Fatalf("DefaultDescribe failed: %v", err)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated description should end with ellipsis: %q", got)
	}
	if n := utf8.RuneCountInString(got); n > maxDescriptionLen+1 {
		t.Errorf("description is %d runes, want <= %d", n, maxDescriptionLen+1)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestTruncateWordsShortInputUntouched(t *testing.T) {
	if got := truncateWords("short", 160); got != "short" {
		t.Errorf("truncateWords = %q", got)
	}
}
