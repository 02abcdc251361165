package events

import (
	"context"

	"tixnaija/internal/domain"
	"tixnaija/internal/repository"
)

type eventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListPublished(ctx context.Context, f repository.EventFilter) ([]domain.Event, int64, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	SetStatus(ctx context.Context, eventID int64, status domain.EventStatus, reason string) error
}

type moderationNotifier interface {
	NotifyEventApproved(ctx context.Context, organizerID, eventID int64)
	NotifyEventRejected(ctx context.Context, organizerID, eventID int64, reason string)
}
