package repository

import (
	"context"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", e.ID).Updates(map[string]any{
		"title":        e.Title,
		"description":  e.Description,
		"venue_id":     e.VenueID,
		"category_id":  e.CategoryID,
		"city_id":      e.CityID,
		"starts_at":    e.StartsAt,
		"ends_at":      e.EndsAt,
		"ticket_price": e.TicketPrice,
		"capacity":     e.Capacity,
	}).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).
		Preload("Venue").Preload("Category").Preload("City").
		Where("slug = ?", slug).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

type EventFilter struct {
	CityID     int64
	CategoryID int64
	Limit      int
	Offset     int
}

func (r *EventRepository) ListPublished(ctx context.Context, f EventFilter) ([]domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{}).Where("status = ?", domain.EventPublished)
	if f.CityID > 0 {
		q = q.Where("city_id = ?", f.CityID)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var events []domain.Event
	if err := q.Order("starts_at ASC").Limit(limit).Offset(f.Offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	var events []domain.Event
	if err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	var events []domain.Event
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) SetStatus(ctx context.Context, eventID int64, status domain.EventStatus, reason string) error {
	updates := map[string]any{"status": status}
	if status == domain.EventRejected {
		updates["rejected_for"] = reason
	}
	return r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", eventID).Updates(updates).Error
}
