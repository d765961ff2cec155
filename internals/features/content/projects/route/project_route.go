package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/projects/controller"
	authMiddleware "helix_backend/internals/middlewares/auth"
)

func ProjectPublicRoutes(api fiber.Router, db *gorm.DB) {
	projectCtrl := controller.NewProjectController(db)

	projects := api.Group("/projects")
	projects.Get("/", projectCtrl.GetAllProjects)
}

func ProjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	projectCtrl := controller.NewProjectController(db)

	projects := api.Group("/projects", authMiddleware.RequirePermission(constants.PermManageProjects))
	projects.Get("/", projectCtrl.GetAllProjects)
	projects.Post("/", projectCtrl.SaveProject)
	projects.Delete("/:id", projectCtrl.DeleteProject)
}
