package handlers

import (
	"log"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
)

// ProfileRequest is the inbound shape for creating a business profile.
// Unknown extra fields are ignored.
type ProfileRequest struct {
	OwnerName    string  `json:"owner_name" validate:"required"`
	BusinessName string  `json:"business_name" validate:"required"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Industry     *string `json:"industry"`
}

// HandleCreateProfile inserts a new business profile.
func (h *Handler) HandleCreateProfile(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	profile := models.Profile{
		OwnerName:    req.OwnerName,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Industry:     req.Industry,
	}

	id, err := h.DB.CreateDocument(c.Context(), "profile", profile)
	if err != nil {
		log.Printf("❌ [PROFILE] Insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Profile created",
	})
}

// HandleGetProfiles lists every stored profile with its id stringified.
func (h *Handler) HandleGetProfiles(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	items, err := h.DB.GetDocuments(c.Context(), "profile", database.NoLimit)
	if err != nil {
		log.Printf("❌ [PROFILE] List error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list profiles",
		})
	}

	for _, item := range items {
		stringifyID(item)
	}
	return c.JSON(items)
}
