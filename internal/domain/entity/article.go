package entity

import "github.com/google/uuid"

// Article joins one author to one magazine. The title is fixed at
// construction; author and magazine may be re-pointed through their setters,
// which only check that the new value is a live entity of the same registry.
// A zero Article belongs to no registry and rejects every reassignment.
type Article struct {
	ID       uuid.UUID
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle creates an article in the default registry.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	return defaultRegistry.NewArticle(author, magazine, title)
}

// NewArticle validates author, magazine and title, in that order, and
// registers a new article. Nothing is registered when any check fails.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	art := &Article{ID: uuid.New()}
	if err := r.checkAuthor(author); err != nil {
		return nil, err
	}
	art.author = author
	if err := r.checkMagazine(magazine); err != nil {
		return nil, err
	}
	art.magazine = magazine
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	art.title = title
	r.articles = append(r.articles, art)
	return art, nil
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title
}

// Author returns the article's author.
func (a *Article) Author() *Author {
	return a.author
}

// Magazine returns the magazine the article was published in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// SetTitle always fails: a title cannot change once constructed.
func (a *Article) SetTitle(string) error {
	return &ImmutableError{Field: "title"}
}

// SetAuthor re-points the article at another author of the same registry.
func (a *Article) SetAuthor(author *Author) error {
	if err := a.registry().checkAuthor(author); err != nil {
		return err
	}
	a.author = author
	return nil
}

// SetMagazine re-points the article at another magazine of the same registry.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := a.registry().checkMagazine(magazine); err != nil {
		return err
	}
	a.magazine = magazine
	return nil
}

// registry is nil for an Article that was not built by NewArticle.
func (a *Article) registry() *Registry {
	if a.author != nil {
		return a.author.reg
	}
	return nil
}

func (r *Registry) checkAuthor(author *Author) error {
	if r == nil || author == nil || author.reg != r {
		return &TypeError{Field: "author", Want: "Author"}
	}
	return nil
}

func (r *Registry) checkMagazine(magazine *Magazine) error {
	if r == nil || magazine == nil || magazine.reg != r {
		return &TypeError{Field: "magazine", Want: "Magazine"}
	}
	return nil
}
