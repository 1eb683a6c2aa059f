package models

import (
	"time"
)

// RSVP is the join row between a user and a wedding they attend.
// The composite unique index keeps one RSVP per (user, wedding) pair.
type RSVP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_rsvps_user_wedding"`
	WeddingID uint      `json:"wedding_id" gorm:"not null;uniqueIndex:idx_rsvps_user_wedding"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
