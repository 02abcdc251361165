package events

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required" validate:"required"`
	Description string    `json:"description"`
	VenueID     int64     `json:"venue_id"`
	CategoryID  int64     `json:"category_id"`
	CityID      int64     `json:"city_id"`
	StartsAt    time.Time `json:"starts_at" binding:"required" validate:"required"`
	EndsAt      time.Time `json:"ends_at"`
	TicketPrice int64     `json:"ticket_price" validate:"gte=0"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
}

type UpdateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	VenueID     int64      `json:"venue_id"`
	CategoryID  int64      `json:"category_id"`
	CityID      int64      `json:"city_id"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	TicketPrice *int64     `json:"ticket_price"`
	Capacity    *int       `json:"capacity"`
}

type RejectEventRequest struct {
	Reason string `json:"reason"`
}
