package docpress

import (
	_ "embed"
	"os"
	"path/filepath"
)

// defaultStylesheet ships with the generator. It is written to
// <out>/docpress.css unless the user provides their own at
// <static>/docpress.css.
//
//go:embed embedded/docpress.css
var defaultStylesheet []byte

func (s *Site) writeStylesheet() error {
	if _, err := os.Stat(filepath.Join(s.Config.StaticDir, "docpress.css")); err == nil {
		return nil
	}
	return os.WriteFile(filepath.Join(s.Config.OutputDir, "docpress.css"), defaultStylesheet, 0o644)
}
