package controller

import (
	"errors"

	"helix_backend/internals/features/content/reviews/dto"
	"helix_backend/internals/features/content/reviews/model"
	configModel "helix_backend/internals/features/content/siteconfig/model"
	helper "helix_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

var validate = validator.New()

// GetAllReviews lists reviews newest first by review date.
func (ctrl *ReviewController) GetAllReviews(c *fiber.Ctx) error {
	var reviews []model.ReviewModel
	if err := ctrl.DB.Order("date DESC").Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}

	resp := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewDTO(r))
	}
	return helper.JsonOK(c, "Reviews fetched successfully", resp)
}

// GetPublicReviews is the site-facing list. When the visibility toggle is off
// it answers with an empty list instead of exposing the data.
func (ctrl *ReviewController) GetPublicReviews(c *fiber.Ctx) error {
	cfg, err := configModel.FirstConfig(ctrl.DB)
	if err == nil && !cfg.ShowReviews {
		return helper.JsonOK(c, "Reviews fetched successfully", []dto.ReviewDTO{})
	}
	return ctrl.GetAllReviews(c)
}

// SaveReview inserts when the id is client-temporary, updates otherwise.
func (ctrl *ReviewController) SaveReview(c *fiber.Ctx) error {
	var req dto.SaveReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if helper.IsNewEntityID(req.ID) {
		review := model.ReviewModel{
			Name:   req.Name,
			Rating: req.Rating,
			Text:   req.Text,
			Date:   req.Date,
		}
		if err := ctrl.DB.Create(&review).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create review")
		}
		return helper.JsonCreated(c, "Review created successfully", dto.ToReviewDTO(review))
	}

	var review model.ReviewModel
	if err := ctrl.DB.First(&review, "id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch review")
	}

	review.Name = req.Name
	review.Rating = req.Rating
	review.Text = req.Text
	review.Date = req.Date
	if err := ctrl.DB.Save(&review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update review")
	}
	return helper.JsonUpdated(c, "Review updated successfully", dto.ToReviewDTO(review))
}

func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")

	var review model.ReviewModel
	if err := ctrl.DB.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch review")
	}

	if err := ctrl.DB.Delete(&review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete review")
	}
	return helper.JsonDeleted(c, "Review deleted successfully", fiber.Map{"id": id})
}

// SaveReviewSettings flips the public visibility of the reviews section. The
// flag lives on the singleton site config row and only that column is written.
func (ctrl *ReviewController) SaveReviewSettings(c *fiber.Ctx) error {
	var req dto.ReviewSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	cfg, err := configModel.FirstConfig(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch site config")
	}

	if err := ctrl.DB.Model(cfg).
		Update("show_reviews", req.ShowReviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update review settings")
	}
	return helper.JsonUpdated(c, "Review settings updated successfully", fiber.Map{
		"show_reviews": req.ShowReviews,
	})
}
