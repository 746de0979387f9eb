package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/edgewool/docpress"
	"github.com/edgewool/docpress/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
}

func runNewSite(name string) error {
	// Derive project directory name from the last path segment.
	dirName := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dirName = name[idx+1:]
	}

	if _, err := os.Stat(dirName); err == nil {
		return fmt.Errorf("directory %q already exists", dirName)
	}

	data := scaffoldData{
		ProjectName: dirName,
		SiteName:    toTitle(dirName),
	}

	fmt.Printf("Creating new docpress site: %s\n\n", dirName)

	root := "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		outPath := filepath.Join(dirName, relPath)
		outPath = strings.TrimSuffix(outPath, ".tmpl")

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}

		fmt.Printf("  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s\n", dirName)
	fmt.Println("  docpress build")
	fmt.Println()
	fmt.Println("Add pages under content/ and product records under products/.")
	return nil
}

// runNewPage writes a front-matter stub at <content_dir>/<slug>.md. The
// config is optional; without one the default content dir is used.
func runNewPage(configPath, slug string) error {
	contentDir := "content"
	if cfg, err := docpress.LoadConfig(configPath); err == nil {
		contentDir = cfg.ContentDir
	}

	slug = strings.Trim(slug, "/")
	if slug == "" {
		return fmt.Errorf("page slug is required")
	}
	outPath := filepath.Join(contentDir, filepath.FromSlash(slug)+".md")
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("page %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	title := toTitle(filepath.Base(slug))
	stub := fmt.Sprintf("---\ntitle: %s\nupdated: %s\n---\n\n", title, time.Now().Format("2006-01-02"))
	if err := os.WriteFile(outPath, []byte(stub), 0o644); err != nil {
		return err
	}
	fmt.Printf("  created %s\n", outPath)
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-docs" -> "My Docs", "mydocs" -> "Mydocs"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
