package handlers

import (
	"context"
	"os"
	"time"

	"app/utils"

	"github.com/gofiber/fiber/v2"
)

const probeTimeout = 3 * time.Second

// HandleRoot is the liveness endpoint.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "UMKM Prediction Backend Running"})
}

// HandleTestDatabase reports gateway availability, configuration presence
// and up to 10 collection names. Every probe is guarded locally so this
// endpoint always answers 200, whatever state storage is in. Secret values
// are never echoed, only whether they are set.
func (h *Handler) HandleTestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.DB != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Context(), probeTimeout)
		defer cancel()

		if names, err := h.DB.ListCollectionNames(ctx); err != nil {
			response["database"] = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = setOrNotSet(os.Getenv("DATABASE_URL"))
	response["database_name"] = setOrNotSet(os.Getenv("DATABASE_NAME"))

	return c.JSON(response)
}

func setOrNotSet(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
