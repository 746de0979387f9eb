package docpress

import "time"

// Tag describes a single document head element: a <title>, <meta>, or
// <link>. Tags are kept in insertion order; the serializer in render.go
// emits them exactly as ordered.
//
// For meta tags Content holds the content attribute value; for title
// tags it holds the element text. Link tags carry everything in Attrs.
type Tag struct {
	Name    string
	Attrs   map[string]string
	Content string
}

// TitleTag returns a <title> descriptor.
func TitleTag(content string) Tag {
	return Tag{Name: "title", Content: content}
}

// Meta returns a <meta name=...> descriptor.
func Meta(name, content string) Tag {
	return Tag{Name: "meta", Attrs: map[string]string{"name": name}, Content: content}
}

// MetaProperty returns a <meta property=...> descriptor (OpenGraph style).
func MetaProperty(property, content string) Tag {
	return Tag{Name: "meta", Attrs: map[string]string{"property": property}, Content: content}
}

// MetaHTTPEquiv returns a <meta http-equiv=...> descriptor.
func MetaHTTPEquiv(equiv, content string) Tag {
	return Tag{Name: "meta", Attrs: map[string]string{"http-equiv": equiv}, Content: content}
}

// LinkTag returns a <link> descriptor with the given attributes.
func LinkTag(attrs map[string]string) Tag {
	return Tag{Name: "link", Attrs: attrs}
}

// Page is the core content type loaded from a markdown file and rendered
// into the output tree. The loader constructs it with HeadTags seeded
// from front matter (a single title descriptor plus any extras); the
// head assembler then derives the final tag sequence once per build.
type Page struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Path        string // source file, relative to the content dir

	ContentType  string // pcx_content_type front matter field
	Products     []string
	Tags         []string
	Updated      *time.Time
	ExternalLink string

	HeadTags []Tag
}

// Product is the metadata record for a documentation section, looked up
// by the first path segment of a page slug against the products dir.
type Product struct {
	Key string `yaml:"-"`

	Meta struct {
		Title string `yaml:"title"`
	} `yaml:"meta"`

	Product struct {
		Title string `yaml:"title"`
		Group string `yaml:"group"`
		URL   string `yaml:"url"`
	} `yaml:"product"`

	Resources struct {
		DashboardLink string `yaml:"dashboard_link"`
	} `yaml:"resources"`
}
