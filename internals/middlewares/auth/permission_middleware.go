package auth

import (
	"github.com/gofiber/fiber/v2"

	"helix_backend/internals/constants"
	teamModel "helix_backend/internals/features/team/model"
	helper "helix_backend/internals/helpers"
)

// RequirePermission gates a route on a single capability flag. Denial stops
// the request before the handler runs, so a denied mutation never reaches the
// store. Absence of a resolved access record denies.
func RequirePermission(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !permissionsOf(c).Allows(capability) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrAccessDenied)
		}
		return c.Next()
	}
}

// RequireAnyPermission passes when at least one capability is granted. Used
// for shared affordances like image upload that serve several content tabs.
func RequireAnyPermission(capabilities ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !permissionsOf(c).AllowsAny(capabilities...) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrAccessDenied)
		}
		return c.Next()
	}
}

func permissionsOf(c *fiber.Ctx) *teamModel.PermissionSet {
	if role := RoleFromLocals(c); role != nil {
		return &role.Permissions
	}
	return nil
}
