package dto

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Section patches. Every patch maps to a disjoint subset of contact_info
// columns, so two admins saving different sections can never overwrite each
// other's fields. Columns() is the exact set the store update will touch.

type SectionPatch interface {
	Columns() map[string]interface{}
}

// ============================
// Contact info
// ============================

type ContactPatch struct {
	Owner   string `json:"owner" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
	Offer   string `json:"offer"`
}

func (p ContactPatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"owner":   p.Owner,
		"phone":   p.Phone,
		"email":   p.Email,
		"address": p.Address,
		"hours":   p.Hours,
		"offer":   p.Offer,
	}
}

// ============================
// Hero (helix) content
// ============================

type HelixPatch struct {
	HelixTitle             string `json:"helix_title"`
	HelixTitleHighlight    string `json:"helix_title_highlight"`
	HelixSubtitle          string `json:"helix_subtitle"`
	HelixSubtitleHighlight string `json:"helix_subtitle_highlight"`
	HelixTagline           string `json:"helix_tagline"`
	HelixDescription       string `json:"helix_description"`
	HelixVideoURL          string `json:"helix_video_url"`
	CerakoteBeforeURL      string `json:"cerakote_before_url"`
	CerakoteAfterURL       string `json:"cerakote_after_url"`
	LogoURL                string `json:"logo_url"`
	ShowExtraVideos        bool   `json:"show_extra_videos"`
	ShowSoundGallery       bool   `json:"show_sound_gallery"`
}

func (p HelixPatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"helix_title":              p.HelixTitle,
		"helix_title_highlight":    p.HelixTitleHighlight,
		"helix_subtitle":           p.HelixSubtitle,
		"helix_subtitle_highlight": p.HelixSubtitleHighlight,
		"helix_tagline":            p.HelixTagline,
		"helix_description":        p.HelixDescription,
		"helix_video_url":          p.HelixVideoURL,
		"cerakote_before_url":      p.CerakoteBeforeURL,
		"cerakote_after_url":       p.CerakoteAfterURL,
		"logo_url":                 p.LogoURL,
		"show_extra_videos":        p.ShowExtraVideos,
		"show_sound_gallery":       p.ShowSoundGallery,
	}
}

// ============================
// Appearance (theme & effects)
// ============================

type AppearancePatch struct {
	Theme            string `json:"theme" validate:"omitempty,oneof=midnight stealth vintage neon forest ocean"`
	LayoutStyle      string `json:"layout_style" validate:"omitempty,oneof=default minimal"`
	HelixTitleEffect string `json:"helix_title_effect" validate:"omitempty,oneof=none idle heat underglow ignition rev carbon"`
	HelixTextEffect  string `json:"helix_text_effect" validate:"omitempty,oneof=none idle heat underglow ignition rev carbon"`
}

func (p AppearancePatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"theme":              p.Theme,
		"layout_style":       p.LayoutStyle,
		"helix_title_effect": p.HelixTitleEffect,
		"helix_text_effect":  p.HelixTextEffect,
	}
}

// ============================
// Promotion banner
// ============================

type PromotionPatch struct {
	PromotionEnabled bool   `json:"promotion_enabled"`
	PromotionText    string `json:"promotion_text"`
}

func (p PromotionPatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"promotion_enabled": p.PromotionEnabled,
		"promotion_text":    p.PromotionText,
	}
}

// ============================
// About & social
// ============================

type SocialPatch struct {
	AboutText       string `json:"about_text"`
	SocialInstagram string `json:"social_instagram"`
	SocialFacebook  string `json:"social_facebook"`
	SocialWhatsapp  string `json:"social_whatsapp"`
}

func (p SocialPatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"about_text":       p.AboutText,
		"social_instagram": p.SocialInstagram,
		"social_facebook":  p.SocialFacebook,
		"social_whatsapp":  p.SocialWhatsapp,
	}
}

// ============================
// Opening hours
// ============================

type OpeningHoursSpec struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Weekends  string `json:"weekends"`
}

type HoursPatch struct {
	OpeningHoursSpec OpeningHoursSpec `json:"opening_hours_spec"`
}

func (p HoursPatch) Columns() map[string]interface{} {
	raw, _ := json.Marshal(p.OpeningHoursSpec)
	return map[string]interface{}{
		"opening_hours_spec": datatypes.JSON(raw),
	}
}

// ============================
// Section layout
// ============================

type LayoutPatch struct {
	SectionOrder []string `json:"section_order" validate:"required,min=1"`
}

func (p LayoutPatch) Columns() map[string]interface{} {
	return map[string]interface{}{
		"section_order": pq.StringArray(p.SectionOrder),
	}
}

// ============================
// Cerakote stock map
// ============================

type StockPatch struct {
	CerakoteStock map[string]bool `json:"cerakote_stock" validate:"required"`
}

func (p StockPatch) Columns() map[string]interface{} {
	stock := datatypes.JSONMap{}
	for code, inStock := range p.CerakoteStock {
		stock[code] = inStock
	}
	return map[string]interface{}{
		"cerakote_stock": stock,
	}
}

// StockToggleRequest flips a single finish code in the stock map.
type StockToggleRequest struct {
	Code string `json:"code" validate:"required"`
}
