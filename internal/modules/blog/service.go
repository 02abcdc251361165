package blog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"tixnaija/internal/domain"
)

var ErrPostNotFound = errors.New("post not found")

var postSlugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

type postStore interface {
	Create(ctx context.Context, p *domain.Post) error
	Update(ctx context.Context, p *domain.Post) error
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, int64, error)
}

type Service struct {
	posts postStore
}

func NewService(posts postStore) *Service {
	return &Service{posts: posts}
}

func (s *Service) ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, int64, error) {
	return s.posts.ListPublished(ctx, limit, offset)
}

func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil || !post.Published {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *Service) Create(ctx context.Context, authorID int64, req PostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Slug:      postSlug(req.Title),
		Title:     req.Title,
		Body:      req.Body,
		AuthorID:  authorID,
		Published: req.Published,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, slug string, req PostRequest) (*domain.Post, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post.Title = req.Title
	post.Body = req.Body
	post.Published = req.Published
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func postSlug(title string) string {
	slug := postSlugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 120 {
		slug = slug[:120]
	}
	return slug + "-" + uuid.NewString()[:8]
}
