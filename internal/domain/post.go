package domain

import "time"

type Post struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;type:varchar(160);not null" json:"slug"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title" validate:"required"`
	Body      string    `gorm:"type:text" json:"body"`
	AuthorID  int64     `gorm:"index;not null" json:"author_id"`
	Published bool      `gorm:"default:false;index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
