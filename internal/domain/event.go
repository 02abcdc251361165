package domain

import "time"

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPending   EventStatus = "pending"
	EventPublished EventStatus = "published"
	EventRejected  EventStatus = "rejected"
	EventArchived  EventStatus = "archived"
)

type Event struct {
	ID          int64       `gorm:"primaryKey" json:"id"`
	Slug        string      `gorm:"uniqueIndex;type:varchar(160);not null" json:"slug"`
	Title       string      `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	OrganizerID int64       `gorm:"index;not null" json:"organizer_id"`
	VenueID     int64       `gorm:"index" json:"venue_id,omitempty"`
	CategoryID  int64       `gorm:"index" json:"category_id,omitempty"`
	CityID      int64       `gorm:"index" json:"city_id,omitempty"`
	StartsAt    time.Time   `json:"starts_at" validate:"required"`
	EndsAt      time.Time   `json:"ends_at"`
	TicketPrice int64       `json:"ticket_price" validate:"gte=0"`
	Capacity    int         `json:"capacity" validate:"gte=0"`
	Status      EventStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	RejectedFor string      `gorm:"type:text" json:"rejected_for,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Venue    *Venue    `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	City     *City     `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

func (Event) TableName() string { return "events" }
