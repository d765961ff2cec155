package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helix_backend/internals/constants"
	"helix_backend/internals/features/team/controller"
	authMiddleware "helix_backend/internals/middlewares/auth"
)

func TeamAdminRoutes(api fiber.Router, db *gorm.DB) {
	teamCtrl := controller.NewTeamController(db)

	team := api.Group("/team", authMiddleware.RequirePermission(constants.PermManageTeam))
	team.Get("/", teamCtrl.GetTeam)
	team.Post("/", teamCtrl.CreateTeamMember)
	team.Put("/:user_id", teamCtrl.UpdateUserRole)
	team.Delete("/:user_id", teamCtrl.DeleteUserRole)
}
