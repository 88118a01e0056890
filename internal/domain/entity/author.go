// Package entity defines the catalog's domain entities: authors, magazines and
// the articles that join them. Each entity belongs to a Registry, and every
// relationship is derived by scanning that registry's articles.
package entity

import "github.com/google/uuid"

// Author is a writer of articles. The name is fixed at construction.
// A zero Author belongs to no registry: it has no articles and cannot add any.
type Author struct {
	ID   uuid.UUID
	name string
	reg  *Registry
}

// NewAuthor creates an author in the default registry.
func NewAuthor(name string) (*Author, error) {
	return defaultRegistry.NewAuthor(name)
}

// NewAuthor validates name and registers a new author.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	a := &Author{ID: uuid.New(), name: name, reg: r}
	r.authors = append(r.authors, a)
	return a, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// SetName always fails: an author's name cannot change once constructed.
func (a *Author) SetName(string) error {
	return &ImmutableError{Field: "name"}
}

// Articles returns the articles written by this author in creation order.
func (a *Author) Articles() []*Article {
	return a.reg.articlesWhere(func(art *Article) bool { return art.author == a })
}

// Magazines returns the distinct magazines this author has written for.
func (a *Author) Magazines() []*Magazine {
	mags := make([]*Magazine, 0)
	for _, art := range a.Articles() {
		mags = append(mags, art.magazine)
	}
	return distinct(mags, func(m *Magazine) *Magazine { return m })
}

// AddArticle creates and registers an article by this author in magazine.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return a.reg.NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines this author has
// written for. ok is false when the author has no articles.
func (a *Author) TopicAreas() (categories []string, ok bool) {
	mags := a.Magazines()
	if len(mags) == 0 {
		return nil, false
	}
	categories = make([]string, 0, len(mags))
	for _, m := range mags {
		categories = append(categories, m.category)
	}
	return distinct(categories, func(c string) string { return c }), true
}
