package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"helix_backend/internals/constants"
	"helix_backend/internals/features/team/dto"
	"helix_backend/internals/features/team/model"
	userModel "helix_backend/internals/features/users/model"
	helper "helix_backend/internals/helpers"
)

var validateTeam = validator.New()

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// =============================
// List team members
// =============================
func (ctrl *TeamController) GetTeam(c *fiber.Ctx) error {
	var roles []model.UserRoleModel
	if err := ctrl.DB.Order("created_at DESC").Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve team")
	}

	result := make([]dto.UserRoleDTO, 0, len(roles))
	for _, r := range roles {
		result = append(result, dto.ToUserRoleDTO(r))
	}
	return helper.JsonOK(c, "ok", result)
}

// =============================
// Provision a team member
// =============================
// Creates the credential identity and its access record in one transaction.
// New members start as editors with a conservative permission set: only
// manage_projects is on.
func (ctrl *TeamController) CreateTeamMember(c *fiber.Ctx) error {
	var body dto.CreateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeam.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role := body.Role
	if role == "" {
		role = constants.RoleEditor
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var roleRow model.UserRoleModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			Email:    strings.ToLower(strings.TrimSpace(body.Email)),
			Password: string(hashed),
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				return fiber.NewError(fiber.StatusConflict, "A member with that email already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}

		roleRow = model.UserRoleModel{
			UserID:      user.ID,
			Email:       user.Email,
			Role:        role,
			Permissions: model.DefaultPermissions(),
		}
		if err := tx.Create(&roleRow).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create role record")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonCreated(c, "Team member created", dto.ToUserRoleDTO(roleRow))
}

// =============================
// Edit role & capabilities
// =============================
// Role label and each capability flag change independently; the flags are what
// every gate reads.
func (ctrl *TeamController) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeam.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var roleRow model.UserRoleModel
	if err := ctrl.DB.First(&roleRow, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Role record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]interface{}{
		"role":        body.Role,
		"permissions": body.Permissions,
	}
	if err := ctrl.DB.Model(&roleRow).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role record")
	}

	roleRow.Role = body.Role
	roleRow.Permissions = body.Permissions
	return helper.JsonUpdated(c, "Permissions updated", dto.ToUserRoleDTO(roleRow))
}

// =============================
// Revoke access
// =============================
// Deletes the access record only; the credential identity remains (removing it
// needs service-role infrastructure access this API does not hold). A
// super_admin record is refused before any store write.
func (ctrl *TeamController) DeleteUserRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var roleRow model.UserRoleModel
	if err := ctrl.DB.First(&roleRow, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Role record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if roleRow.Role == constants.RoleSuperAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, constants.ErrSuperAdminProtected)
	}

	if err := ctrl.DB.Delete(&model.UserRoleModel{}, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke access")
	}

	return helper.JsonDeleted(c, "User access removed", fiber.Map{"user_id": userID.String()})
}
