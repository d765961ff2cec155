package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helix_backend/internals/features/content/services/dto"
	"helix_backend/internals/features/content/services/model"
	helper "helix_backend/internals/helpers"
)

var validateService = validator.New()

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// =============================
// Get All Services (stable display order, oldest first)
// =============================
func (ctrl *ServiceController) GetAllServices(c *fiber.Ctx) error {
	var services []model.ServiceModel
	if err := ctrl.DB.Order("created_at ASC").Find(&services).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve services")
	}

	result := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		result = append(result, dto.ToServiceDTO(s))
	}
	return helper.JsonOK(c, "ok", result)
}

// =============================
// Save Service (insert or update)
// =============================
func (ctrl *ServiceController) SaveService(c *fiber.Ctx) error {
	var body dto.SaveServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if helper.IsNewEntityID(body.ID) {
		service := model.ServiceModel{
			Title:       body.Title,
			Description: body.Description,
			Icon:        body.Icon,
			IsSpecialty: body.IsSpecialty,
		}
		if err := ctrl.DB.Create(&service).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save service")
		}
		return helper.JsonCreated(c, "Service Saved", dto.ToServiceDTO(service))
	}

	id, err := uuid.Parse(body.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	var service model.ServiceModel
	if err := ctrl.DB.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	service.Title = body.Title
	service.Description = body.Description
	service.Icon = body.Icon
	service.IsSpecialty = body.IsSpecialty

	if err := ctrl.DB.Save(&service).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save service")
	}
	return helper.JsonUpdated(c, "Service Saved", dto.ToServiceDTO(service))
}

// =============================
// Delete Service
// =============================
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	if err := ctrl.DB.Delete(&model.ServiceModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete service")
	}
	return helper.JsonDeleted(c, "Service Deleted", fiber.Map{"id": id.String()})
}
