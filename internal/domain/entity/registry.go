package entity

import "slices"

// Registry holds every author, magazine and article constructed through it,
// in creation order. It is the only relationship index: all queries are
// linear scans over these slices. Entries are never removed.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	authors   []*Author
	magazines []*Magazine
	articles  []*Article
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level constructors.
func Default() *Registry {
	return defaultRegistry
}

// Authors returns all registered authors in creation order.
func (r *Registry) Authors() []*Author {
	return slices.Clone(r.authors)
}

// Magazines returns all registered magazines in creation order.
func (r *Registry) Magazines() []*Magazine {
	return slices.Clone(r.magazines)
}

// Articles returns all registered articles in creation order.
func (r *Registry) Articles() []*Article {
	return slices.Clone(r.articles)
}

// TopPublisher returns the magazine with the most articles. Ties go to the
// magazine registered first. ok is false when no magazine exists.
func (r *Registry) TopPublisher() (top *Magazine, ok bool) {
	if len(r.magazines) == 0 {
		return nil, false
	}
	counts := make(map[*Magazine]int, len(r.magazines))
	for _, a := range r.articles {
		counts[a.magazine]++
	}
	best := -1
	for _, m := range r.magazines {
		if n := counts[m]; n > best {
			top, best = m, n
		}
	}
	return top, true
}

func (r *Registry) articlesWhere(keep func(*Article) bool) []*Article {
	var out []*Article
	if r == nil {
		return out
	}
	for _, a := range r.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Authors returns all authors in the default registry.
func Authors() []*Author { return defaultRegistry.Authors() }

// Magazines returns all magazines in the default registry.
func Magazines() []*Magazine { return defaultRegistry.Magazines() }

// Articles returns all articles in the default registry.
func Articles() []*Article { return defaultRegistry.Articles() }

// TopPublisher returns the top publisher of the default registry.
func TopPublisher() (*Magazine, bool) { return defaultRegistry.TopPublisher() }

// distinct keeps the first occurrence of each key, preserving order.
func distinct[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, it)
	}
	return out
}
