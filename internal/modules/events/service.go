package events

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tixnaija/internal/domain"
	"tixnaija/internal/repository"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

type Service struct {
	events   eventStore
	notifier moderationNotifier
	log      *zerolog.Logger
}

func NewService(events eventStore, notifier moderationNotifier, log *zerolog.Logger) *Service {
	return &Service{events: events, notifier: notifier, log: log}
}

func (s *Service) ListPublished(ctx context.Context, f repository.EventFilter) ([]domain.Event, int64, error) {
	return s.events.ListPublished(ctx, f)
}

func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.events.GetBySlug(ctx, slug)
	if err != nil || event.Status != domain.EventPublished {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *Service) Create(ctx context.Context, organizerID int64, req CreateEventRequest) (*domain.Event, error) {
	event := &domain.Event{
		Slug:        makeSlug(req.Title),
		Title:       req.Title,
		Description: req.Description,
		OrganizerID: organizerID,
		VenueID:     req.VenueID,
		CategoryID:  req.CategoryID,
		CityID:      req.CityID,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		TicketPrice: req.TicketPrice,
		Capacity:    req.Capacity,
		Status:      domain.EventDraft,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) Update(ctx context.Context, organizerID, eventID int64, req UpdateEventRequest) (*domain.Event, error) {
	event, err := s.ownedEditable(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.VenueID > 0 {
		event.VenueID = req.VenueID
	}
	if req.CategoryID > 0 {
		event.CategoryID = req.CategoryID
	}
	if req.CityID > 0 {
		event.CityID = req.CityID
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if req.TicketPrice != nil {
		event.TicketPrice = *req.TicketPrice
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) ListOwn(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	return s.events.ListByOrganizer(ctx, organizerID)
}

// Submit moves a draft (or previously rejected) event into the moderation
// queue.
func (s *Service) Submit(ctx context.Context, organizerID, eventID int64) error {
	event, err := s.ownedEditable(ctx, organizerID, eventID)
	if err != nil {
		return err
	}
	if event.Status != domain.EventDraft && event.Status != domain.EventRejected {
		return ErrNotEditable
	}
	return s.events.SetStatus(ctx, event.ID, domain.EventPending, "")
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListByStatus(ctx, domain.EventPending)
}

func (s *Service) Approve(ctx context.Context, eventID int64) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return ErrEventNotFound
	}
	if err := s.events.SetStatus(ctx, event.ID, domain.EventPublished, ""); err != nil {
		return err
	}
	s.log.Info().Int64("event_id", event.ID).Msg("event approved")
	if s.notifier != nil {
		s.notifier.NotifyEventApproved(ctx, event.OrganizerID, event.ID)
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, eventID int64, reason string) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return ErrEventNotFound
	}
	if err := s.events.SetStatus(ctx, event.ID, domain.EventRejected, reason); err != nil {
		return err
	}
	s.log.Info().Int64("event_id", event.ID).Str("reason", reason).Msg("event rejected")
	if s.notifier != nil {
		s.notifier.NotifyEventRejected(ctx, event.OrganizerID, event.ID, reason)
	}
	return nil
}

func (s *Service) Archive(ctx context.Context, eventID int64) error {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return ErrEventNotFound
	}
	return s.events.SetStatus(ctx, eventID, domain.EventArchived, "")
}

func (s *Service) ownedEditable(ctx context.Context, organizerID, eventID int64) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	if event.OrganizerID != organizerID {
		return nil, ErrNotOwner
	}
	switch event.Status {
	case domain.EventDraft, domain.EventPending, domain.EventRejected:
		return event, nil
	}
	// Published and archived events change only through moderation.
	return nil, ErrNotEditable
}

func makeSlug(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 120 {
		slug = slug[:120]
	}
	// Suffix keeps slugs unique without a lookup.
	return slug + "-" + uuid.NewString()[:8]
}
