package handler

import (
	"errors"

	"ewarga-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// writeError maps the core's error kinds onto HTTP statuses. Anything
// untyped is a storage failure and stays a 500.
func writeError(c *fiber.Ctx, err error) error {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	}

	var conflictErr *apperr.ConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflictErr.Message})
	}

	var referenceErr *apperr.ReferenceError
	if errors.As(err, &referenceErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": referenceErr.Message})
	}

	var rangeErr *apperr.OutOfRangeError
	if errors.As(err, &rangeErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":           rangeErr.Error(),
			"distance_meters": rangeErr.DistanceMeters,
			"radius_meters":   rangeErr.RadiusMeters,
		})
	}

	var capacityErr *apperr.CapacityError
	if errors.As(err, &capacityErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":    capacityErr.Error(),
			"required": capacityErr.Required,
			"roster":   capacityErr.Roster,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func staffIDFromContext(c *fiber.Ctx) uint {
	// Claims are decoded as float64 by the JWT middleware.
	id, _ := c.Locals("staff_id").(float64)
	return uint(id)
}
