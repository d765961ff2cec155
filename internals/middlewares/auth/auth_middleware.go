package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helix_backend/internals/configs"
	teamModel "helix_backend/internals/features/team/model"
	userModel "helix_backend/internals/features/users/model"
	helper "helix_backend/internals/helpers"
)

const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
)

// AuthMiddleware verifies the access token, rejects blacklisted tokens, and
// resolves the caller's access record (user_roles row) once per request into
// Locals. Gates downstream read the resolved record, never a global cache; a
// capability revoked mid-session takes effect on the caller's next request.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing token")
		}

		// Blacklist check, once per request.
		if c.Locals("token_checked") == nil {
			var existing userModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] blacklist lookup: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or missing user ID")
		}
		c.Locals(LocUserID, userID.String())
		helper.SetRawAccessToken(c, tokenString)

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - user not found")
			}
			return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
		}

		// Resolve the access record. Absence is not an error here; every gate
		// fails closed on a nil record.
		var role teamModel.UserRoleModel
		if err := db.First(&role, "user_id = ?", userID).Error; err == nil {
			c.Locals(LocUserRole, &role)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] role lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		return c.Next()
	}
}

// RoleFromLocals returns the request's resolved access record, nil when the
// caller has no user_roles row.
func RoleFromLocals(c *fiber.Ctx) *teamModel.UserRoleModel {
	if role, ok := c.Locals(LocUserRole).(*teamModel.UserRoleModel); ok {
		return role
	}
	return nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user userModel.UserModel
	if err := db.Select("id", "is_active").First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("user deactivated")
	}
	return nil
}
