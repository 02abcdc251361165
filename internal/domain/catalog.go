package domain

import "time"

type Venue struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(160);not null" json:"name" validate:"required"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CityID    int64     `gorm:"index" json:"city_id,omitempty"`
	Capacity  int       `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string { return "venues" }

type Category struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;type:varchar(80);not null" json:"name" validate:"required"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(80);not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }

type City struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;type:varchar(80);not null" json:"name" validate:"required"`
	State     string    `gorm:"type:varchar(80)" json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (City) TableName() string { return "cities" }
