package controller

import (
	"helix_backend/internals/features/content/siteconfig/dto"
	"helix_backend/internals/features/content/siteconfig/model"
	helper "helix_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SiteConfigController struct {
	DB *gorm.DB
}

func NewSiteConfigController(db *gorm.DB) *SiteConfigController {
	return &SiteConfigController{DB: db}
}

var validate = validator.New()

// GetSiteConfig returns the singleton config row.
func (ctrl *SiteConfigController) GetSiteConfig(c *fiber.Ctx) error {
	cfg, err := model.FirstConfig(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch site config")
	}
	return helper.JsonOK(c, "Site config fetched successfully", cfg)
}

// Section handlers. Each one writes only its own column subset, so saving
// one section never clobbers concurrent edits to another.

func (ctrl *SiteConfigController) SaveContact(c *fiber.Ctx) error {
	var req dto.ContactPatch
	return ctrl.applySection(c, &req, "Contact info updated successfully")
}

func (ctrl *SiteConfigController) SaveHelix(c *fiber.Ctx) error {
	var req dto.HelixPatch
	return ctrl.applySection(c, &req, "Hero content updated successfully")
}

func (ctrl *SiteConfigController) SaveAppearance(c *fiber.Ctx) error {
	var req dto.AppearancePatch
	return ctrl.applySection(c, &req, "Appearance updated successfully")
}

func (ctrl *SiteConfigController) SavePromotion(c *fiber.Ctx) error {
	var req dto.PromotionPatch
	return ctrl.applySection(c, &req, "Promotion updated successfully")
}

func (ctrl *SiteConfigController) SaveSocial(c *fiber.Ctx) error {
	var req dto.SocialPatch
	return ctrl.applySection(c, &req, "Social links updated successfully")
}

func (ctrl *SiteConfigController) SaveHours(c *fiber.Ctx) error {
	var req dto.HoursPatch
	return ctrl.applySection(c, &req, "Opening hours updated successfully")
}

func (ctrl *SiteConfigController) SaveLayout(c *fiber.Ctx) error {
	var req dto.LayoutPatch
	return ctrl.applySection(c, &req, "Section layout updated successfully")
}

func (ctrl *SiteConfigController) SaveStock(c *fiber.Ctx) error {
	var req dto.StockPatch
	return ctrl.applySection(c, &req, "Stock map updated successfully")
}

func (ctrl *SiteConfigController) applySection(c *fiber.Ctx, req dto.SectionPatch, okMessage string) error {
	if err := c.BodyParser(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cfg, err := model.FirstConfig(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch site config")
	}

	if err := ctrl.DB.Model(cfg).Updates(req.Columns()).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update site config")
	}
	return helper.JsonUpdated(c, okMessage, req.Columns())
}

// ToggleStock flips a single finish code in the stock map. A code that is
// absent from the map counts as in stock, so the first toggle marks it out.
func (ctrl *SiteConfigController) ToggleStock(c *fiber.Ctx) error {
	var req dto.StockToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cfg, err := model.FirstConfig(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch site config")
	}

	stock := cfg.CerakoteStock
	if stock == nil {
		stock = datatypes.JSONMap{}
	}
	inStock := true
	if v, ok := stock[req.Code]; ok {
		if b, isBool := v.(bool); isBool {
			inStock = b
		}
	}
	stock[req.Code] = !inStock

	if err := ctrl.DB.Model(cfg).
		Update("cerakote_stock", stock).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update stock map")
	}
	return helper.JsonUpdated(c, "Stock updated successfully", fiber.Map{
		"code":     req.Code,
		"in_stock": !inStock,
	})
}
