package models

import "time"

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Author        string    `gorm:"size:200;not null" json:"author"`
	ISBN          string    `gorm:"size:13" json:"isbn"`
	Description   string    `gorm:"type:text" json:"description"`
	PublishedYear *int      `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Reviews []Review `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
