package handlers

import (
	"log"

	"app/models"

	"github.com/gofiber/fiber/v2"
)

// ReportRequest is the inbound shape for a monitoring report entry.
type ReportRequest struct {
	Title  string  `json:"title" validate:"required"`
	Notes  *string `json:"notes"`
	Status string  `json:"status"`
}

// HandleCreateReport inserts a report entry, defaulting status to "open".
func (h *Handler) HandleCreateReport(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	if req.Status == "" {
		req.Status = "open"
	}

	report := models.Report{
		Title:  req.Title,
		Notes:  req.Notes,
		Status: req.Status,
	}

	id, err := h.DB.CreateDocument(c.Context(), "report", report)
	if err != nil {
		log.Printf("❌ [REPORTS] Insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Report created",
	})
}

// HandleListReports lists stored reports, capped by the limit query
// parameter (default 50), with ids stringified.
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	items, err := h.DB.GetDocuments(c.Context(), "report", listLimit(c))
	if err != nil {
		log.Printf("❌ [REPORTS] List error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list reports",
		})
	}

	for _, item := range items {
		stringifyID(item)
	}
	return c.JSON(items)
}
