package route

import (
	assistantRoute "helix_backend/internals/features/assistant/route"
	cerakoteRoute "helix_backend/internals/features/content/cerakote/route"
	messageRoute "helix_backend/internals/features/content/messages/route"
	projectRoute "helix_backend/internals/features/content/projects/route"
	reviewRoute "helix_backend/internals/features/content/reviews/route"
	serviceRoute "helix_backend/internals/features/content/services/route"
	siteConfigRoute "helix_backend/internals/features/content/siteconfig/route"
	uploadRoute "helix_backend/internals/features/content/uploads/route"
	teamRoute "helix_backend/internals/features/team/route"
	authRoute "helix_backend/internals/features/users/route"
	"helix_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts the whole API surface.
//
//	/api/auth    session endpoints
//	/api/public  read surface for the site plus contact form and assistant
//	/api/a       admin surface, authenticated and capability gated per group
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	projectRoute.ProjectPublicRoutes(public, db)
	serviceRoute.ServicePublicRoutes(public, db)
	reviewRoute.ReviewPublicRoutes(public, db)
	cerakoteRoute.CerakotePublicRoutes(public, db)
	siteConfigRoute.SiteConfigPublicRoutes(public, db)
	messageRoute.MessagePublicRoutes(public, db)
	assistantRoute.AssistantPublicRoutes(public, db)

	admin := app.Group("/api/a", auth.AuthMiddleware(db))
	projectRoute.ProjectAdminRoutes(admin, db)
	serviceRoute.ServiceAdminRoutes(admin, db)
	reviewRoute.ReviewAdminRoutes(admin, db)
	cerakoteRoute.CerakoteAdminRoutes(admin, db)
	siteConfigRoute.SiteConfigAdminRoutes(admin, db)
	messageRoute.MessageAdminRoutes(admin, db)
	uploadRoute.UploadAdminRoutes(admin)
	teamRoute.TeamAdminRoutes(admin, db)
}
