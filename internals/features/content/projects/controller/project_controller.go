package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helix_backend/internals/features/content/projects/dto"
	"helix_backend/internals/features/content/projects/model"
	helper "helix_backend/internals/helpers"
)

var validateProject = validator.New()

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// =============================
// Get All Projects (newest first)
// =============================
func (ctrl *ProjectController) GetAllProjects(c *fiber.Ctx) error {
	var projects []model.ProjectModel
	if err := ctrl.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve projects")
	}

	result := make([]dto.ProjectDTO, 0, len(projects))
	for _, p := range projects {
		result = append(result, dto.ToProjectDTO(p))
	}
	return helper.JsonOK(c, "ok", result)
}

// =============================
// Save Project (insert or update)
// =============================
// A missing or temporary ("new_") id takes the insert path; the response
// always carries the server-assigned id so the panel can drop the placeholder.
func (ctrl *ProjectController) SaveProject(c *fiber.Ctx) error {
	var body dto.SaveProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if helper.IsNewEntityID(body.ID) {
		project := model.ProjectModel{
			Name:           body.Name,
			Category:       body.Category,
			ServiceDetails: body.ServiceDetails,
			Image:          body.Image,
			Description:    body.Description,
			CompletedDate:  body.CompletedDate,
		}
		if err := ctrl.DB.Create(&project).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save project")
		}
		return helper.JsonCreated(c, "Project Saved", dto.ToProjectDTO(project))
	}

	id, err := uuid.Parse(body.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	project.Name = body.Name
	project.Category = body.Category
	project.ServiceDetails = body.ServiceDetails
	project.Image = body.Image
	project.Description = body.Description
	project.CompletedDate = body.CompletedDate

	if err := ctrl.DB.Save(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save project")
	}
	return helper.JsonUpdated(c, "Project Saved", dto.ToProjectDTO(project))
}

// =============================
// Delete Project
// =============================
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid project id")
	}

	if err := ctrl.DB.Delete(&model.ProjectModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	return helper.JsonDeleted(c, "Project Deleted", fiber.Map{"id": id.String()})
}
