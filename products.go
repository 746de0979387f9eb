package docpress

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Products is the product collection, keyed by file basename. Pages find
// their product record through the first path segment of their slug; a
// missing key is a routine condition, not an error.
type Products map[string]*Product

// LoadProducts reads every .yaml file in dir into a product record. A
// missing directory yields an empty collection — sites without products
// are fine.
func LoadProducts(dir string) (Products, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Products{}, nil
		}
		return nil, err
	}
	products := Products{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var p Product
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("docpress: parse product %s: %w", name, err)
		}
		p.Key = strings.TrimSuffix(name, ".yaml")
		products[p.Key] = &p
	}
	return products, nil
}

// Lookup returns the product record for key, or nil when absent.
func (p Products) Lookup(key string) *Product {
	return p[key]
}
