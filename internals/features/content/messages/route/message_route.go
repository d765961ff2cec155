package route

import (
	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/messages/controller"
	"helix_backend/internals/middlewares"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MessagePublicRoutes exposes the contact form endpoint.
func MessagePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)
	router.Post("/messages", middlewares.ContactFormRateLimiter(), ctrl.SubmitMessage)
}

// MessageAdminRoutes mounts the inbox. Reading needs view_messages, any
// mutation needs manage_messages on top of that.
func MessageAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)

	messages := router.Group("/messages", auth.RequirePermission(constants.PermViewMessages))
	messages.Get("/", ctrl.GetMessages)

	manage := messages.Group("/", auth.RequirePermission(constants.PermManageMessages))
	manage.Put("/:id/status", ctrl.UpdateMessageStatus)
	manage.Post("/archive", ctrl.ArchiveMessages)
	manage.Post("/unarchive", ctrl.UnarchiveMessages)
	manage.Post("/delete", ctrl.DeleteMessages)
}
