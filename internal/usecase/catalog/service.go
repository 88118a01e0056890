package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/utils/text"
)

// maxLoggedValue caps user-provided strings echoed into log lines.
const maxLoggedValue = 64

// AddArticleInput represents the input parameters for adding an article.
// Author and magazine are referenced by name.
type AddArticleInput struct {
	Author   string
	Magazine string
	Title    string
}

// Service provides catalog use cases over a single registry.
// Like the registry it is not safe for concurrent use.
type Service struct {
	Registry *entity.Registry
	Logger   *slog.Logger
}

// NewService creates a Service. A nil registry selects the process-wide
// default registry and a nil logger selects slog.Default().
func NewService(reg *entity.Registry, logger *slog.Logger) *Service {
	if reg == nil {
		reg = entity.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Registry: reg, Logger: logger}
}

// CreateAuthor registers a new author.
// Returns a ValidationError if the name is empty.
func (s *Service) CreateAuthor(ctx context.Context, name string) (a *entity.Author, err error) {
	_, span := tracing.StartSpan(ctx, "catalog.CreateAuthor", attribute.String("author.name", name))
	defer func() { tracing.EndSpan(span, err) }()

	a, err = s.Registry.NewAuthor(name)
	if err != nil {
		s.reject(ctx, metrics.KindAuthor, err, slog.String("name", text.Truncate(name, maxLoggedValue)))
		return nil, fmt.Errorf("create author: %w", err)
	}
	s.created(ctx, metrics.KindAuthor, slog.String("id", a.ID.String()), slog.String("name", a.Name()))
	return a, nil
}

// CreateMagazine registers a new magazine.
// Returns a ValidationError if the name or category is invalid.
func (s *Service) CreateMagazine(ctx context.Context, name, category string) (m *entity.Magazine, err error) {
	_, span := tracing.StartSpan(ctx, "catalog.CreateMagazine",
		attribute.String("magazine.name", name),
		attribute.String("magazine.category", category))
	defer func() { tracing.EndSpan(span, err) }()

	m, err = s.Registry.NewMagazine(name, category)
	if err != nil {
		s.reject(ctx, metrics.KindMagazine, err,
			slog.String("name", text.Truncate(name, maxLoggedValue)),
			slog.String("category", text.Truncate(category, maxLoggedValue)))
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	s.created(ctx, metrics.KindMagazine,
		slog.String("id", m.ID.String()),
		slog.String("name", m.Name()),
		slog.String("category", m.Category()))
	return m, nil
}

// AddArticle adds an article by the named author to the named magazine.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unknown names and a
// ValidationError for an invalid title.
func (s *Service) AddArticle(ctx context.Context, in AddArticleInput) (art *entity.Article, err error) {
	_, span := tracing.StartSpan(ctx, "catalog.AddArticle",
		attribute.String("author.name", in.Author),
		attribute.String("magazine.name", in.Magazine))
	defer func() { tracing.EndSpan(span, err) }()

	author, err := s.FindAuthor(in.Author)
	if err != nil {
		s.reject(ctx, metrics.KindArticle, err, slog.String("author", text.Truncate(in.Author, maxLoggedValue)))
		return nil, fmt.Errorf("add article: %w", err)
	}
	magazine, err := s.FindMagazine(in.Magazine)
	if err != nil {
		s.reject(ctx, metrics.KindArticle, err, slog.String("magazine", text.Truncate(in.Magazine, maxLoggedValue)))
		return nil, fmt.Errorf("add article: %w", err)
	}

	art, err = author.AddArticle(magazine, in.Title)
	if err != nil {
		s.reject(ctx, metrics.KindArticle, err,
			slog.String("author", author.Name()),
			slog.String("magazine", magazine.Name()),
			slog.String("title", text.Truncate(in.Title, maxLoggedValue)))
		return nil, fmt.Errorf("add article: %w", err)
	}
	s.created(ctx, metrics.KindArticle,
		slog.String("id", art.ID.String()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.String("title", art.Title()))
	return art, nil
}

// RenameMagazine changes the name of the named magazine.
// On a ValidationError the magazine keeps its current name.
func (s *Service) RenameMagazine(ctx context.Context, current, name string) (err error) {
	_, span := tracing.StartSpan(ctx, "catalog.RenameMagazine",
		attribute.String("magazine.name", current),
		attribute.String("magazine.new_name", name))
	defer func() { tracing.EndSpan(span, err) }()

	m, err := s.FindMagazine(current)
	if err != nil {
		return fmt.Errorf("rename magazine: %w", err)
	}
	if err := m.SetName(name); err != nil {
		s.reject(ctx, metrics.KindMagazine, err, slog.String("name", current))
		return fmt.Errorf("rename magazine: %w", err)
	}
	metrics.RecordMagazineUpdate("name")
	s.Logger.InfoContext(ctx, "magazine renamed",
		slog.String("id", m.ID.String()),
		slog.String("from", current),
		slog.String("to", name))
	return nil
}

// Recategorize changes the category of the named magazine.
// On a ValidationError the magazine keeps its current category.
func (s *Service) Recategorize(ctx context.Context, name, category string) (err error) {
	_, span := tracing.StartSpan(ctx, "catalog.Recategorize",
		attribute.String("magazine.name", name),
		attribute.String("magazine.category", category))
	defer func() { tracing.EndSpan(span, err) }()

	m, err := s.FindMagazine(name)
	if err != nil {
		return fmt.Errorf("recategorize magazine: %w", err)
	}
	prev := m.Category()
	if err := m.SetCategory(category); err != nil {
		s.reject(ctx, metrics.KindMagazine, err, slog.String("name", name))
		return fmt.Errorf("recategorize magazine: %w", err)
	}
	metrics.RecordMagazineUpdate("category")
	s.Logger.InfoContext(ctx, "magazine recategorized",
		slog.String("id", m.ID.String()),
		slog.String("name", name),
		slog.String("from", prev),
		slog.String("to", category))
	return nil
}

// FindAuthor returns the first registered author with the given name.
func (s *Service) FindAuthor(name string) (*entity.Author, error) {
	for _, a := range s.Registry.Authors() {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrAuthorNotFound, name)
}

// FindMagazine returns the first registered magazine with the given name.
func (s *Service) FindMagazine(name string) (*entity.Magazine, error) {
	for _, m := range s.Registry.Magazines() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMagazineNotFound, name)
}

// AuthorReport builds the report for the named author.
func (s *Service) AuthorReport(ctx context.Context, name string) (r *AuthorReport, err error) {
	_, span := tracing.StartSpan(ctx, "catalog.AuthorReport", attribute.String("author.name", name))
	defer func() { tracing.EndSpan(span, err) }()

	a, err := s.FindAuthor(name)
	if err != nil {
		return nil, fmt.Errorf("author report: %w", err)
	}
	start := time.Now()
	report := newAuthorReport(a)
	metrics.RecordQuery("author_report", time.Since(start))
	return &report, nil
}

// MagazineReport builds the report for the named magazine.
func (s *Service) MagazineReport(ctx context.Context, name string) (r *MagazineReport, err error) {
	_, span := tracing.StartSpan(ctx, "catalog.MagazineReport", attribute.String("magazine.name", name))
	defer func() { tracing.EndSpan(span, err) }()

	m, err := s.FindMagazine(name)
	if err != nil {
		return nil, fmt.Errorf("magazine report: %w", err)
	}
	start := time.Now()
	report := newMagazineReport(m)
	metrics.RecordQuery("magazine_report", time.Since(start))
	return &report, nil
}

// TopPublisher reports the magazine with the most articles.
// ok is false when no magazine is registered.
func (s *Service) TopPublisher(ctx context.Context) (r *MagazineReport, ok bool) {
	_, span := tracing.StartSpan(ctx, "catalog.TopPublisher")
	defer span.End()

	start := time.Now()
	m, ok := s.Registry.TopPublisher()
	metrics.RecordQuery("top_publisher", time.Since(start))
	if !ok {
		s.Logger.DebugContext(ctx, "no magazines registered")
		return nil, false
	}
	span.SetAttributes(attribute.String("magazine.name", m.Name()))
	report := newMagazineReport(m)
	return &report, true
}

// Snapshot reports every author and magazine in registration order.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	_, span := tracing.StartSpan(ctx, "catalog.Snapshot")
	defer span.End()

	start := time.Now()
	authors := s.Registry.Authors()
	magazines := s.Registry.Magazines()
	snap := Snapshot{
		Authors:      make([]AuthorReport, 0, len(authors)),
		Magazines:    make([]MagazineReport, 0, len(magazines)),
		ArticleCount: len(s.Registry.Articles()),
	}
	for _, a := range authors {
		snap.Authors = append(snap.Authors, newAuthorReport(a))
	}
	for _, m := range magazines {
		snap.Magazines = append(snap.Magazines, newMagazineReport(m))
	}
	if top, ok := s.Registry.TopPublisher(); ok {
		snap.TopPublisher = top.Name()
	}
	metrics.RecordQuery("snapshot", time.Since(start))
	span.SetAttributes(
		attribute.Int("catalog.authors", len(snap.Authors)),
		attribute.Int("catalog.magazines", len(snap.Magazines)),
		attribute.Int("catalog.articles", snap.ArticleCount))
	return snap
}

func (s *Service) created(ctx context.Context, kind string, attrs ...any) {
	metrics.RecordEntityCreated(kind)
	metrics.UpdateRegistrySize(len(s.Registry.Authors()), len(s.Registry.Magazines()), len(s.Registry.Articles()))
	s.Logger.InfoContext(ctx, kind+" created", attrs...)
}

func (s *Service) reject(ctx context.Context, kind string, err error, attrs ...any) {
	metrics.RecordDomainError(kind, err)
	attrs = append(attrs, slog.String("class", metrics.ErrorClass(err)), slog.Any("error", err))
	s.Logger.WarnContext(ctx, kind+" rejected", attrs...)
}
