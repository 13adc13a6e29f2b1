package handlers

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gateway is the persistence surface the handlers depend on. *database.Store
// satisfies it; tests substitute an in-memory fake.
type Gateway interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, limit int64) ([]bson.M, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Handler carries the injected storage gateway. DB is nil when storage was
// not configured or the startup connection failed; every data handler checks
// that before anything else.
type Handler struct {
	DB Gateway
}

// New creates a Handler around the given gateway (nil for unavailable).
func New(db Gateway) *Handler {
	return &Handler{DB: db}
}

// databaseNotConfigured is the fixed configuration-error response.
func databaseNotConfigured(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Database not configured",
	})
}

// validate reports field names from json tags so validation errors match the
// wire format rather than Go field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// invalidBody rejects a request whose body could not be parsed at all.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

// validationFailed shapes per-field validation errors into a 422 response.
func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  fieldErrors(err),
	})
}

// fieldError reports a single hand-raised field problem as a 422 response.
func fieldError(c *fiber.Ctx, field, detail string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  map[string]string{field: detail},
	})
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fieldErrorDetail(fe)
		}
	}
	return out
}

func fieldErrorDetail(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "invalid value"
	}
}

// stringifyID converts a MongoDB ObjectId into its hex form so clients only
// ever see string ids.
func stringifyID(doc bson.M) {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
}

// listLimit reads the optional limit query parameter. Non-positive values
// collapse to zero, which the gateway answers with an empty list.
func listLimit(c *fiber.Ctx) int64 {
	limit := c.QueryInt("limit", 50)
	if limit < 0 {
		limit = 0
	}
	return int64(limit)
}
