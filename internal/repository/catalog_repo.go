package repository

import (
	"context"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateVenue(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *CatalogRepository) UpdateVenue(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Model(&domain.Venue{}).Where("id = ?", v.ID).Updates(map[string]any{
		"name":     v.Name,
		"address":  v.Address,
		"city_id":  v.CityID,
		"capacity": v.Capacity,
	}).Error
}

func (r *CatalogRepository) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *CatalogRepository) ListVenues(ctx context.Context, cityID int64) ([]domain.Venue, error) {
	q := r.db.WithContext(ctx).Order("name")
	if cityID > 0 {
		q = q.Where("city_id = ?", cityID)
	}
	var venues []domain.Venue
	if err := q.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) CreateCity(ctx context.Context, c *domain.City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CatalogRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := r.db.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
