package route

import (
	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/siteconfig/controller"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SiteConfigPublicRoutes serves the read-only config used to render the site.
func SiteConfigPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiteConfigController(db)
	router.Get("/site-config", ctrl.GetSiteConfig)
}

// SiteConfigAdminRoutes mounts the section editors behind the manage_content
// gate. Each PUT touches only its own section's columns.
func SiteConfigAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSiteConfigController(db)

	cfg := router.Group("/site-config", auth.RequirePermission(constants.PermManageContent))
	cfg.Get("/", ctrl.GetSiteConfig)
	cfg.Put("/contact", ctrl.SaveContact)
	cfg.Put("/helix", ctrl.SaveHelix)
	cfg.Put("/appearance", ctrl.SaveAppearance)
	cfg.Put("/promotion", ctrl.SavePromotion)
	cfg.Put("/social", ctrl.SaveSocial)
	cfg.Put("/hours", ctrl.SaveHours)
	cfg.Put("/layout", ctrl.SaveLayout)
	cfg.Put("/stock", ctrl.SaveStock)
	cfg.Post("/stock/toggle", ctrl.ToggleStock)
}
