package controller

import (
	helper "helix_backend/internals/helpers"
	"helix_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadImage accepts a multipart image, converts it to webp and returns the
// public URL. The optional "folder" field namespaces objects inside the bucket.
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing image file")
	}

	folder := c.FormValue("folder", "general")

	publicURL, err := storage.UploadImage(folder, fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Failed to upload image")
	}
	return helper.JsonCreated(c, "Image uploaded successfully", fiber.Map{
		"url": publicURL,
	})
}
