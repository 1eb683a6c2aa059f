package models

import (
	"time"
)

type Wedding struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WedderOne string    `json:"wedder_one" gorm:"not null"`
	WedderTwo string    `json:"wedder_two" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Address   string    `json:"address" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner  *User  `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Guests []RSVP `json:"guests,omitempty" gorm:"foreignKey:WeddingID"`
}

type WeddingRequest struct {
	WedderOne string    `json:"wedder_one" form:"wedder_one" validate:"required"`
	WedderTwo string    `json:"wedder_two" form:"wedder_two" validate:"required"`
	Date      time.Time `json:"date" form:"date" validate:"required,futuredate"`
	Address   string    `json:"address" form:"address" validate:"required"`
}
