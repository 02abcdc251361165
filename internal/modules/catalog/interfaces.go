package catalog

import (
	"context"

	"tixnaija/internal/domain"
)

type catalogStore interface {
	CreateVenue(ctx context.Context, v *domain.Venue) error
	UpdateVenue(ctx context.Context, v *domain.Venue) error
	GetVenue(ctx context.Context, id int64) (*domain.Venue, error)
	ListVenues(ctx context.Context, cityID int64) ([]domain.Venue, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCity(ctx context.Context, c *domain.City) error
	ListCities(ctx context.Context) ([]domain.City, error)
}
