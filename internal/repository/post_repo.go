package repository

import (
	"context"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Model(&domain.Post{}).Where("id = ?", p.ID).Updates(map[string]any{
		"title":     p.Title,
		"body":      p.Body,
		"published": p.Published,
	}).Error
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var p domain.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Post{}).Where("published = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var posts []domain.Post
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
