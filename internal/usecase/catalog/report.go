package catalog

import (
	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// AuthorReport is the serializable view of an author and its derived relations.
// TopicAreas is nil when the author has no articles.
type AuthorReport struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Articles   []string  `json:"articles" yaml:"articles"`
	Magazines  []string  `json:"magazines" yaml:"magazines"`
	TopicAreas []string  `json:"topic_areas" yaml:"topic_areas,omitempty"`
}

// MagazineReport is the serializable view of a magazine and its derived relations.
// ArticleTitles is nil when the magazine has no articles, and
// ContributingAuthors is nil when no author has more than two articles in it.
type MagazineReport struct {
	ID                  uuid.UUID `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	Category            string    `json:"category" yaml:"category"`
	ArticleCount        int       `json:"article_count" yaml:"article_count"`
	Contributors        []string  `json:"contributors" yaml:"contributors"`
	ArticleTitles       []string  `json:"article_titles" yaml:"article_titles,omitempty"`
	ContributingAuthors []string  `json:"contributing_authors" yaml:"contributing_authors,omitempty"`
}

// Snapshot is a report over the whole registry. TopPublisher is empty when
// no magazine is registered.
type Snapshot struct {
	Authors      []AuthorReport   `json:"authors" yaml:"authors"`
	Magazines    []MagazineReport `json:"magazines" yaml:"magazines"`
	ArticleCount int              `json:"article_count" yaml:"article_count"`
	TopPublisher string           `json:"top_publisher,omitempty" yaml:"top_publisher,omitempty"`
}

func newAuthorReport(a *entity.Author) AuthorReport {
	r := AuthorReport{
		ID:        a.ID,
		Name:      a.Name(),
		Articles:  []string{},
		Magazines: []string{},
	}
	for _, art := range a.Articles() {
		r.Articles = append(r.Articles, art.Title())
	}
	for _, m := range a.Magazines() {
		r.Magazines = append(r.Magazines, m.Name())
	}
	if areas, ok := a.TopicAreas(); ok {
		r.TopicAreas = areas
	}
	return r
}

func newMagazineReport(m *entity.Magazine) MagazineReport {
	r := MagazineReport{
		ID:           m.ID,
		Name:         m.Name(),
		Category:     m.Category(),
		ArticleCount: len(m.Articles()),
		Contributors: authorNames(m.Contributors()),
	}
	if titles, ok := m.ArticleTitles(); ok {
		r.ArticleTitles = titles
	}
	if authors, ok := m.ContributingAuthors(); ok {
		r.ContributingAuthors = authorNames(authors)
	}
	return r
}

func authorNames(authors []*entity.Author) []string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name())
	}
	return names
}
