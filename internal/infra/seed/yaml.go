// Package seed loads a catalog from a YAML document and replays it through
// the catalog service.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	catalogUC "magazine-catalog/internal/usecase/catalog"
)

// CatalogYAML represents the YAML file structure
type CatalogYAML struct {
	Authors   []AuthorYAML   `yaml:"authors"`
	Magazines []MagazineYAML `yaml:"magazines"`
	Articles  []ArticleYAML  `yaml:"articles"`
	Updates   []UpdateYAML   `yaml:"updates,omitempty"`
}

// AuthorYAML represents an author entry
type AuthorYAML struct {
	Name string `yaml:"name"`
}

// MagazineYAML represents a magazine entry
type MagazineYAML struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleYAML represents an article; author and magazine are referenced by name
type ArticleYAML struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// UpdateYAML renames and/or recategorizes an existing magazine after all
// articles have been added.
type UpdateYAML struct {
	Magazine string `yaml:"magazine"`
	Name     string `yaml:"name,omitempty"`
	Category string `yaml:"category,omitempty"`
}

// Stats counts what a load applied.
type Stats struct {
	Authors   int
	Magazines int
	Articles  int
	Updates   int
}

// LoadFile loads the catalog at path into svc.
func LoadFile(ctx context.Context, path string, svc *catalogUC.Service) (Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("read seed file: %w", err)
	}
	return Load(ctx, bytes.NewReader(data), svc)
}

// Load decodes a catalog from r and applies it to svc: authors, then
// magazines, then articles, then updates, each in document order. Unknown
// keys are rejected. The first failing entry stops the load; entries applied
// before it stay registered.
func Load(ctx context.Context, r io.Reader, svc *catalogUC.Service) (Stats, error) {
	var doc CatalogYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Stats{}, fmt.Errorf("parse seed YAML: %w", err)
	}
	return Apply(ctx, &doc, svc)
}

// Apply replays an already decoded catalog into svc.
func Apply(ctx context.Context, doc *CatalogYAML, svc *catalogUC.Service) (Stats, error) {
	var st Stats
	for i, a := range doc.Authors {
		if _, err := svc.CreateAuthor(ctx, a.Name); err != nil {
			return st, fmt.Errorf("authors[%d]: %w", i, err)
		}
		st.Authors++
	}
	for i, m := range doc.Magazines {
		if _, err := svc.CreateMagazine(ctx, m.Name, m.Category); err != nil {
			return st, fmt.Errorf("magazines[%d]: %w", i, err)
		}
		st.Magazines++
	}
	for i, art := range doc.Articles {
		in := catalogUC.AddArticleInput{Author: art.Author, Magazine: art.Magazine, Title: art.Title}
		if _, err := svc.AddArticle(ctx, in); err != nil {
			return st, fmt.Errorf("articles[%d]: %w", i, err)
		}
		st.Articles++
	}
	for i, u := range doc.Updates {
		if err := applyUpdate(ctx, u, svc); err != nil {
			return st, fmt.Errorf("updates[%d]: %w", i, err)
		}
		st.Updates++
	}
	return st, nil
}

func applyUpdate(ctx context.Context, u UpdateYAML, svc *catalogUC.Service) error {
	if u.Name == "" && u.Category == "" {
		return fmt.Errorf("update of %q sets neither name nor category", u.Magazine)
	}
	current := u.Magazine
	if u.Name != "" {
		if err := svc.RenameMagazine(ctx, current, u.Name); err != nil {
			return err
		}
		current = u.Name
	}
	if u.Category != "" {
		if err := svc.Recategorize(ctx, current, u.Category); err != nil {
			return err
		}
	}
	return nil
}
