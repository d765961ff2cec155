package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

type MessageModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	Status     string    `gorm:"column:status;type:varchar(10);default:'unread'" json:"status"`
	IsArchived bool      `gorm:"column:is_archived;default:false" json:"is_archived"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}
