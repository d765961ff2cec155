package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewModel struct {
	ID     uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name   string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Rating int       `gorm:"column:rating;not null" json:"rating"`
	Text   string    `gorm:"column:text;type:text" json:"text"`
	// Ride/visit date shown on the card, "2024-01-31" style.
	Date      string    `gorm:"column:date;type:varchar(20)" json:"date"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
