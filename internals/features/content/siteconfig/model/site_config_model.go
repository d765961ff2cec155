package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SiteConfigModel is the singleton site-configuration record (contact info,
// hero content, theme, layout, promotion banner, cerakote stock map). Exactly
// one row exists; it is always resolved by first match and updated with
// partial, section-scoped column sets so editors of different sections never
// clobber each other.
type SiteConfigModel struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`

	// Contact section
	Owner   string `gorm:"column:owner;type:varchar(100)" json:"owner"`
	Phone   string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Email   string `gorm:"column:email;type:varchar(255)" json:"email"`
	Address string `gorm:"column:address;type:text" json:"address"`
	Hours   string `gorm:"column:hours;type:varchar(100)" json:"hours"`
	Offer   string `gorm:"column:offer;type:text" json:"offer"`

	// Hero (helix) section
	HelixTitle             string `gorm:"column:helix_title;type:varchar(255)" json:"helix_title"`
	HelixTitleHighlight    string `gorm:"column:helix_title_highlight;type:varchar(255)" json:"helix_title_highlight"`
	HelixTitleEffect       string `gorm:"column:helix_title_effect;type:varchar(30)" json:"helix_title_effect"`
	HelixSubtitle          string `gorm:"column:helix_subtitle;type:varchar(255)" json:"helix_subtitle"`
	HelixSubtitleHighlight string `gorm:"column:helix_subtitle_highlight;type:varchar(255)" json:"helix_subtitle_highlight"`
	HelixTagline           string `gorm:"column:helix_tagline;type:varchar(255)" json:"helix_tagline"`
	HelixTextEffect        string `gorm:"column:helix_text_effect;type:varchar(30)" json:"helix_text_effect"`
	HelixDescription       string `gorm:"column:helix_description;type:text" json:"helix_description"`
	HelixVideoURL          string `gorm:"column:helix_video_url;type:text" json:"helix_video_url"`
	CerakoteBeforeURL      string `gorm:"column:cerakote_before_url;type:text" json:"cerakote_before_url"`
	CerakoteAfterURL       string `gorm:"column:cerakote_after_url;type:text" json:"cerakote_after_url"`
	LogoURL                string `gorm:"column:logo_url;type:text" json:"logo_url"`
	ShowExtraVideos        bool   `gorm:"column:show_extra_videos;not null;default:true" json:"show_extra_videos"`
	ShowSoundGallery       bool   `gorm:"column:show_sound_gallery;not null;default:false" json:"show_sound_gallery"`

	// About & social section
	AboutText       string `gorm:"column:about_text;type:text" json:"about_text"`
	SocialInstagram string `gorm:"column:social_instagram;type:text" json:"social_instagram"`
	SocialFacebook  string `gorm:"column:social_facebook;type:text" json:"social_facebook"`
	SocialWhatsapp  string `gorm:"column:social_whatsapp;type:text" json:"social_whatsapp"`

	// Opening hours section, keyed monday..friday + weekends.
	OpeningHoursSpec datatypes.JSON `gorm:"column:opening_hours_spec;type:jsonb" json:"opening_hours_spec"`

	// Layout section
	SectionOrder pq.StringArray `gorm:"column:section_order;type:text[]" json:"section_order"`
	ShowReviews  bool           `gorm:"column:show_reviews;not null;default:true" json:"show_reviews"`

	// Appearance section
	Theme       string `gorm:"column:theme;type:varchar(30)" json:"theme"`
	LayoutStyle string `gorm:"column:layout_style;type:varchar(30)" json:"layout_style"`

	// Promotion banner section
	PromotionEnabled bool   `gorm:"column:promotion_enabled;not null;default:false" json:"promotion_enabled"`
	PromotionText    string `gorm:"column:promotion_text;type:text" json:"promotion_text"`

	// Stock map keyed by cerakote finish code; absent or true means in stock.
	CerakoteStock datatypes.JSONMap `gorm:"column:cerakote_stock;type:jsonb" json:"cerakote_stock"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteConfigModel) TableName() string {
	return "contact_info"
}

// FirstConfig resolves the singleton row ("first match" contract).
func FirstConfig(db *gorm.DB) (*SiteConfigModel, error) {
	var cfg SiteConfigModel
	if err := db.Order("created_at ASC").First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
