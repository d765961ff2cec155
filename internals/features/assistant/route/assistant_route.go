package route

import (
	"helix_backend/internals/configs"
	"helix_backend/internals/features/assistant/controller"
	"helix_backend/internals/features/assistant/service"
	"helix_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssistantPublicRoutes mounts the visitor-facing chat endpoint.
func AssistantPublicRoutes(router fiber.Router, db *gorm.DB) {
	client := service.NewGeminiClient(configs.GeminiAPIKey)
	ctrl := controller.NewAssistantController(db, client)

	router.Post("/assistant/chat", middlewares.AssistantRateLimiter(), ctrl.Chat)
}
