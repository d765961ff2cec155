package route

import (
	"helix_backend/internals/constants"
	"helix_backend/internals/features/content/reviews/controller"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewPublicRoutes serves the published review list.
func ReviewPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReviewController(db)
	router.Get("/reviews", ctrl.GetPublicReviews)
}

// ReviewAdminRoutes mounts review mutations behind the manage_reviews gate.
func ReviewAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReviewController(db)

	reviews := router.Group("/reviews", auth.RequirePermission(constants.PermManageReviews))
	reviews.Get("/", ctrl.GetAllReviews)
	reviews.Post("/", ctrl.SaveReview)
	reviews.Put("/settings", ctrl.SaveReviewSettings)
	reviews.Delete("/:id", ctrl.DeleteReview)
}
