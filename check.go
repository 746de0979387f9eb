package docpress

import (
	"context"
	"fmt"
)

// Check validates the site content without building it. It returns one
// finding per problem: malformed front matter, duplicate slugs, and
// products: references that name no product record. An empty slice
// means the site is clean.
func (s *Site) Check(ctx context.Context) ([]string, error) {
	var findings []string

	if err := s.Config.Validate(); err != nil {
		findings = append(findings, err.Error())
	}

	products, err := LoadProducts(s.Config.ProductsDir)
	if err != nil {
		return nil, err
	}

	seen := map[string]string{}
	err = forEachPageFile(s.Config.ContentDir, func(path, rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, err := parsePage(path, rel)
		if err != nil {
			findings = append(findings, err.Error())
			return nil
		}
		if prev, dup := seen[page.Slug]; dup {
			findings = append(findings, fmt.Sprintf("duplicate slug %q: %s and %s", page.Slug, prev, rel))
		} else {
			seen[page.Slug] = rel
		}
		for _, ref := range page.Products {
			if products.Lookup(ref) == nil {
				findings = append(findings, fmt.Sprintf("page %s references unknown product %q", rel, ref))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}
