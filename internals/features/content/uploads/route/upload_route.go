package route

import (
	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/uploads/controller"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

// UploadAdminRoutes mounts the image uploader. Any content editing capability
// grants access since uploads feed projects, services and cerakote alike.
func UploadAdminRoutes(router fiber.Router) {
	ctrl := controller.NewUploadController()

	router.Post("/uploads/image",
		auth.RequireAnyPermission(
			constants.PermManageProjects,
			constants.PermManageServices,
			constants.PermManageContent,
		),
		ctrl.UploadImage,
	)
}
