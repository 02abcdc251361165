package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"tixnaija/internal/domain"
)

var ErrVenueNotFound = errors.New("venue not found")

var categorySlugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

type Service struct {
	store catalogStore
}

func NewService(store catalogStore) *Service {
	return &Service{store: store}
}

func (s *Service) ListVenues(ctx context.Context, cityID int64) ([]domain.Venue, error) {
	return s.store.ListVenues(ctx, cityID)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.store.ListCities(ctx)
}

func (s *Service) CreateVenue(ctx context.Context, req VenueRequest) (*domain.Venue, error) {
	venue := &domain.Venue{
		Name:     req.Name,
		Address:  req.Address,
		CityID:   req.CityID,
		Capacity: req.Capacity,
	}
	if err := s.store.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) UpdateVenue(ctx context.Context, id int64, req VenueRequest) (*domain.Venue, error) {
	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	venue.Name = req.Name
	venue.Address = req.Address
	venue.CityID = req.CityID
	venue.Capacity = req.Capacity
	if err := s.store.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{
		Name: name,
		Slug: categorySlug(name),
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) CreateCity(ctx context.Context, name, state string) (*domain.City, error) {
	city := &domain.City{Name: name, State: state}
	if err := s.store.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func categorySlug(name string) string {
	slug := categorySlugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
