package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a star rating with an optional comment. UserID is nullable because
// rows predating accounts have no owner; every review created through the
// handlers gets one. The 1-5 range on Rating is enforced by the form layer.
type Review struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	BookID  uint       `gorm:"not null;index" json:"book_id"`
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Rating  int        `gorm:"not null" json:"rating"`
	Comment string     `gorm:"type:text" json:"comment"`

	Book Book  `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
