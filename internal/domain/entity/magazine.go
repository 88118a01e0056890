package entity

import "github.com/google/uuid"

// contributingThreshold is the article count an author must exceed to be a
// contributing author of a magazine.
const contributingThreshold = 2

// Magazine publishes articles. Unlike the other entities, its name and
// category may be changed at any time, each change being re-validated.
// A zero Magazine belongs to no registry and has no articles.
type Magazine struct {
	ID       uuid.UUID
	name     string
	category string
	reg      *Registry
}

// NewMagazine creates a magazine in the default registry.
func NewMagazine(name, category string) (*Magazine, error) {
	return defaultRegistry.NewMagazine(name, category)
}

// NewMagazine validates name and category and registers a new magazine.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	m := &Magazine{ID: uuid.New(), name: name, category: category, reg: r}
	r.magazines = append(r.magazines, m)
	return m, nil
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	return m.name
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	return m.category
}

// SetName replaces the name. On a validation error the old name is kept.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory replaces the category. On a validation error the old category is kept.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// Articles returns the articles published in this magazine in creation order.
func (m *Magazine) Articles() []*Article {
	return m.reg.articlesWhere(func(art *Article) bool { return art.magazine == m })
}

// Contributors returns the distinct authors with at least one article here.
func (m *Magazine) Contributors() []*Author {
	authors := make([]*Author, 0)
	for _, art := range m.Articles() {
		authors = append(authors, art.author)
	}
	return distinct(authors, func(a *Author) *Author { return a })
}

// ArticleTitles returns the titles of this magazine's articles.
// ok is false when the magazine has no articles.
func (m *Magazine) ArticleTitles() (titles []string, ok bool) {
	arts := m.Articles()
	if len(arts) == 0 {
		return nil, false
	}
	titles = make([]string, 0, len(arts))
	for _, art := range arts {
		titles = append(titles, art.title)
	}
	return titles, true
}

// ContributingAuthors returns the authors with more than two articles in this
// magazine, in order of their first article here. ok is false when none qualify.
func (m *Magazine) ContributingAuthors() (authors []*Author, ok bool) {
	counts := make(map[*Author]int)
	var order []*Author
	for _, art := range m.Articles() {
		if counts[art.author] == 0 {
			order = append(order, art.author)
		}
		counts[art.author]++
	}
	for _, a := range order {
		if counts[a] > contributingThreshold {
			authors = append(authors, a)
		}
	}
	if len(authors) == 0 {
		return nil, false
	}
	return authors, true
}
