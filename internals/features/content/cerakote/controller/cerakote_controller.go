package controller

import (
	"errors"

	"helix_backend/internals/features/content/cerakote/dto"
	"helix_backend/internals/features/content/cerakote/model"
	helper "helix_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CerakoteController struct {
	DB *gorm.DB
}

func NewCerakoteController(db *gorm.DB) *CerakoteController {
	return &CerakoteController{DB: db}
}

var validate = validator.New()

// ============================
// Products
// ============================

// GetAllProducts lists gallery products newest first.
func (ctrl *CerakoteController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.CerakoteProductModel
	if err := ctrl.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote products")
	}

	resp := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductDTO(p))
	}
	return helper.JsonOK(c, "Cerakote products fetched successfully", resp)
}

func (ctrl *CerakoteController) SaveProduct(c *fiber.Ctx) error {
	var req dto.SaveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if helper.IsNewEntityID(req.ID) {
		product := model.CerakoteProductModel{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			FinishCode:  req.FinishCode,
		}
		if err := ctrl.DB.Create(&product).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create cerakote product")
		}
		return helper.JsonCreated(c, "Cerakote product created successfully", dto.ToProductDTO(product))
	}

	var product model.CerakoteProductModel
	if err := ctrl.DB.First(&product, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cerakote product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote product")
	}

	product.Title = req.Title
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.FinishCode = req.FinishCode
	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cerakote product")
	}
	return helper.JsonUpdated(c, "Cerakote product updated successfully", dto.ToProductDTO(product))
}

func (ctrl *CerakoteController) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product model.CerakoteProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cerakote product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote product")
	}

	if err := ctrl.DB.Delete(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete cerakote product")
	}
	return helper.JsonDeleted(c, "Cerakote product deleted successfully", fiber.Map{"id": id})
}

// ============================
// Finishes
// ============================

// GetAllFinishes lists the swatch catalogue in catalogue order.
func (ctrl *CerakoteController) GetAllFinishes(c *fiber.Ctx) error {
	var finishes []model.CerakoteFinishModel
	if err := ctrl.DB.Order("created_at ASC").Find(&finishes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote finishes")
	}

	resp := make([]dto.FinishDTO, 0, len(finishes))
	for _, f := range finishes {
		resp = append(resp, dto.ToFinishDTO(f))
	}
	return helper.JsonOK(c, "Cerakote finishes fetched successfully", resp)
}

func (ctrl *CerakoteController) SaveFinish(c *fiber.Ctx) error {
	var req dto.SaveFinishRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if helper.IsNewEntityID(req.ID) {
		finish := model.CerakoteFinishModel{
			Code:     req.Code,
			Name:     req.Name,
			HexColor: req.HexColor,
		}
		if err := ctrl.DB.Create(&finish).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create cerakote finish")
		}
		return helper.JsonCreated(c, "Cerakote finish created successfully", dto.ToFinishDTO(finish))
	}

	var finish model.CerakoteFinishModel
	if err := ctrl.DB.First(&finish, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cerakote finish not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote finish")
	}

	finish.Code = req.Code
	finish.Name = req.Name
	finish.HexColor = req.HexColor
	if err := ctrl.DB.Save(&finish).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cerakote finish")
	}
	return helper.JsonUpdated(c, "Cerakote finish updated successfully", dto.ToFinishDTO(finish))
}

func (ctrl *CerakoteController) DeleteFinish(c *fiber.Ctx) error {
	id := c.Params("id")

	var finish model.CerakoteFinishModel
	if err := ctrl.DB.First(&finish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cerakote finish not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cerakote finish")
	}

	if err := ctrl.DB.Delete(&finish).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete cerakote finish")
	}
	return helper.JsonDeleted(c, "Cerakote finish deleted successfully", fiber.Map{"id": id})
}
