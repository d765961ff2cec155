package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helix_backend/internals/features/users/controller"
	"helix_backend/internals/middlewares"
	authMiddleware "helix_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), authCtrl.Logout)
	api.Get("/me", authMiddleware.AuthMiddleware(db), authCtrl.Me)
}
