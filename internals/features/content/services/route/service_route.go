package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/services/controller"
	authMiddleware "helix_backend/internals/middlewares/auth"
)

func ServicePublicRoutes(api fiber.Router, db *gorm.DB) {
	serviceCtrl := controller.NewServiceController(db)

	services := api.Group("/services")
	services.Get("/", serviceCtrl.GetAllServices)
}

func ServiceAdminRoutes(api fiber.Router, db *gorm.DB) {
	serviceCtrl := controller.NewServiceController(db)

	services := api.Group("/services", authMiddleware.RequirePermission(constants.PermManageServices))
	services.Get("/", serviceCtrl.GetAllServices)
	services.Post("/", serviceCtrl.SaveService)
	services.Delete("/:id", serviceCtrl.DeleteService)
}
