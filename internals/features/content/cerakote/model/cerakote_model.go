package model

import (
	"time"

	"github.com/google/uuid"
)

// CerakoteProductModel is a finished cerakote job shown in the gallery.
type CerakoteProductModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(150);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	FinishCode  string    `gorm:"column:finish_code;type:varchar(20)" json:"finish_code"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CerakoteProductModel) TableName() string {
	return "cerakote_products"
}

// CerakoteFinishModel is a coating colour from the swatch catalogue.
type CerakoteFinishModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string    `gorm:"column:code;type:varchar(20);not null" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	HexColor  string    `gorm:"column:hex_color;type:varchar(9)" json:"hex_color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CerakoteFinishModel) TableName() string {
	return "cerakote_finishes"
}
