package route

import (
	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/cerakote/controller"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CerakotePublicRoutes serves the gallery and swatch catalogue.
func CerakotePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCerakoteController(db)
	router.Get("/cerakote/products", ctrl.GetAllProducts)
	router.Get("/cerakote/finishes", ctrl.GetAllFinishes)
}

// CerakoteAdminRoutes mounts cerakote mutations behind the manage_content gate.
func CerakoteAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCerakoteController(db)

	cerakote := router.Group("/cerakote", auth.RequirePermission(constants.PermManageContent))
	cerakote.Get("/products", ctrl.GetAllProducts)
	cerakote.Post("/products", ctrl.SaveProduct)
	cerakote.Delete("/products/:id", ctrl.DeleteProduct)
	cerakote.Get("/finishes", ctrl.GetAllFinishes)
	cerakote.Post("/finishes", ctrl.SaveFinish)
	cerakote.Delete("/finishes/:id", ctrl.DeleteFinish)
}
