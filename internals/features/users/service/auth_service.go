package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"helix_backend/internals/configs"
	teamModel "helix_backend/internals/features/team/model"
	"helix_backend/internals/features/users/dto"
	"helix_backend/internals/features/users/model"
	helper "helix_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

var validateAuth = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := db.First(&user, "LOWER(email) = LOWER(?)", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := nowUTC()
	expiresAt := now.Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	setAccessCookie(c, accessToken, expiresAt)

	// Access record travels with the login response; absence means the caller
	// can authenticate but holds no capabilities.
	var rolePtr *teamModel.UserRoleModel
	var role teamModel.UserRoleModel
	if err := db.First(&role, "user_id = ?", user.ID).Error; err == nil {
		rolePtr = &role
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] role lookup on login: %v", err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.LoginUser{ID: user.ID.String(), Email: user.Email},
		Role:        rolePtr,
	})
}

// ========================== LOGOUT ==========================
// Blacklists the presented token for the remainder of its lifetime so a
// signed-out session cannot keep mutating content.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No token to revoke")
	}

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: nowUTC().Add(resolveBlacklistTTL(tokenString)),
	}
	if err := db.Create(&entry).Error; err != nil {
		// Double logout: the token is already on the list, treat as success.
		if !strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}

	clearAccessCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

// ========================== CURRENT SESSION ==========================
// Me re-reads the caller's access record from the store. This is the explicit
// refresh operation: a panel that wants fresh capabilities calls it instead of
// trusting whatever it fetched at mount.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var user model.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var rolePtr *teamModel.UserRoleModel
	var role teamModel.UserRoleModel
	if err := db.First(&role, "user_id = ?", userID).Error; err == nil {
		rolePtr = &role
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user": dto.LoginUser{ID: user.ID.String(), Email: user.Email},
		"role": rolePtr,
	})
}

/* ==========================
   Cookies & TTL helpers
========================== */

func setAccessCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAccessCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  nowUTC().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// resolveBlacklistTTL keeps the blacklist row alive exactly as long as the
// token itself could still be replayed.
func resolveBlacklistTTL(accessToken string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return accessTTLDefault
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return accessTTLDefault
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return time.Minute
	}
	return remaining
}
