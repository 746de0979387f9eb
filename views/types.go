package views

// Site holds the site-wide values templates read. Every component takes
// this so nothing is hardcoded.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page metadata into the document shell. The
// assembled head tags travel separately as a component; PageMeta covers
// what the shell itself renders (canonical URL, description, header).
type PageMeta struct {
	Title         string
	Description   string
	URL           string // canonical + og:url
	OGType        string // "website" or "article"
	Updated       string // display date, empty when unknown
	Tags          []string
	ProductTitle  string // header breadcrumb, empty when no product
	ProductURL    string
	DashboardLink string // header link, empty when the product has none
}
