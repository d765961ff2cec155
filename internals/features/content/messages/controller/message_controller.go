package controller

import (
	"errors"

	"helix_backend/internals/features/content/messages/dto"
	"helix_backend/internals/features/content/messages/model"
	helper "helix_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

var validate = validator.New()

// SubmitMessage receives a contact form submission from the public site.
func (ctrl *MessageController) SubmitMessage(c *fiber.Ctx) error {
	var req dto.ContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	msg := model.MessageModel{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  model.StatusUnread,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit message")
	}
	return helper.JsonCreated(c, "Message submitted successfully", dto.ToMessageDTO(msg))
}

// GetMessages lists the inbox or archive view, newest first.
// ?view=archived returns archived messages, anything else the active inbox.
func (ctrl *MessageController) GetMessages(c *fiber.Ctx) error {
	archived := c.Query("view") == "archived"

	var messages []model.MessageModel
	if err := ctrl.DB.
		Where("is_archived = ?", archived).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	resp := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageDTO(m))
	}
	return helper.JsonOK(c, "Messages fetched successfully", resp)
}

// UpdateMessageStatus marks a single message read or unread.
func (ctrl *MessageController) UpdateMessageStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.MessageStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var msg model.MessageModel
	if err := ctrl.DB.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}

	if err := ctrl.DB.Model(&msg).Update("status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update message")
	}
	return helper.JsonUpdated(c, "Message status updated successfully", fiber.Map{
		"id":     id,
		"status": req.Status,
	})
}

// ArchiveMessages moves the given messages to the archive view.
func (ctrl *MessageController) ArchiveMessages(c *fiber.Ctx) error {
	return ctrl.setArchived(c, true, "Messages archived successfully")
}

// UnarchiveMessages restores the given messages to the active inbox.
func (ctrl *MessageController) UnarchiveMessages(c *fiber.Ctx) error {
	return ctrl.setArchived(c, false, "Messages restored successfully")
}

func (ctrl *MessageController) setArchived(c *fiber.Ctx, archived bool, okMessage string) error {
	var req dto.MessageIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result := ctrl.DB.Model(&model.MessageModel{}).
		Where("id IN ?", req.IDs).
		Update("is_archived", archived)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update messages")
	}
	return helper.JsonUpdated(c, okMessage, fiber.Map{
		"ids":      req.IDs,
		"affected": result.RowsAffected,
	})
}

// DeleteMessages permanently removes the given messages.
func (ctrl *MessageController) DeleteMessages(c *fiber.Ctx) error {
	var req dto.MessageIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result := ctrl.DB.Where("id IN ?", req.IDs).Delete(&model.MessageModel{})
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete messages")
	}
	return helper.JsonDeleted(c, "Messages deleted successfully", fiber.Map{
		"ids":      req.IDs,
		"affected": result.RowsAffected,
	})
}
