package handlers

import (
	"log"
	"time"

	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MetricRequest is the inbound shape for recording one period of metrics.
// Numeric fields are pointers so a missing field is distinguishable from an
// explicit zero; zero itself is a valid observation.
type MetricRequest struct {
	Period         string   `json:"period" validate:"required"`
	Sales          *float64 `json:"sales" validate:"required,gte=0"`
	Orders         *int     `json:"orders" validate:"required,gte=0"`
	MarketingSpend *float64 `json:"marketing_spend" validate:"required,gte=0"`
}

// HandleCreateMetric validates and inserts one metric record.
func (h *Handler) HandleCreateMetric(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	var req MetricRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	period, err := utils.ParseDate(req.Period)
	if err != nil {
		return fieldError(c, "period", "must be an ISO date (YYYY-MM-DD)")
	}

	metric := models.Metric{
		Period:         period,
		Sales:          *req.Sales,
		Orders:         *req.Orders,
		MarketingSpend: *req.MarketingSpend,
	}

	id, err := h.DB.CreateDocument(c.Context(), "metric", metric)
	if err != nil {
		log.Printf("❌ [METRICS] Insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save metric",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Metric saved",
	})
}

// HandleListMetrics lists stored metrics, capped by the limit query
// parameter (default 50), with ids stringified and periods rendered as ISO
// date strings.
func (h *Handler) HandleListMetrics(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	items, err := h.DB.GetDocuments(c.Context(), "metric", listLimit(c))
	if err != nil {
		log.Printf("❌ [METRICS] List error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list metrics",
		})
	}

	for _, item := range items {
		stringifyID(item)
		normalizePeriod(item)
	}
	return c.JSON(items)
}

// normalizePeriod rewrites a stored period timestamp as an ISO date string.
func normalizePeriod(doc bson.M) {
	switch v := doc["period"].(type) {
	case primitive.DateTime:
		doc["period"] = utils.FormatDate(v.Time())
	case time.Time:
		doc["period"] = utils.FormatDate(v)
	}
}
