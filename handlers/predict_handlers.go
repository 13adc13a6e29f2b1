package handlers

import (
	"log"

	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// PredictRequest carries the reference numbers a prediction is based on.
// Same constraints as MetricRequest.
type PredictRequest struct {
	Period         string   `json:"period" validate:"required"`
	Sales          *float64 `json:"sales" validate:"required,gte=0"`
	Orders         *int     `json:"orders" validate:"required,gte=0"`
	MarketingSpend *float64 `json:"marketing_spend" validate:"required,gte=0"`
}

// HandlePredict runs the baseline predictor and persists input and output
// together as one prediction record.
func (h *Handler) HandlePredict(c *fiber.Ctx) error {
	if h.DB == nil {
		return databaseNotConfigured(c)
	}

	var req PredictRequest
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

	predictedSales, predictedOrders := utils.BaselinePredict(*req.Sales, *req.Orders, *req.MarketingSpend)

	prediction := models.Prediction{
		Period:          period,
		Sales:           *req.Sales,
		Orders:          *req.Orders,
		MarketingSpend:  *req.MarketingSpend,
		PredictedSales:  predictedSales,
		PredictedOrders: predictedOrders,
	}

	id, err := h.DB.CreateDocument(c.Context(), "prediction", prediction)
	if err != nil {
		log.Printf("❌ [PREDICT] Insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save prediction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":               id,
		"predicted_sales":  predictedSales,
		"predicted_orders": predictedOrders,
	})
}
