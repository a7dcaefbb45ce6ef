package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liftcal/liftcal/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes: absent documents are
// 404, caller mistakes are 400, everything else is a store failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrWorkoutNotFound), errors.Is(err, domain.ErrPlanNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrExerciseIndex),
		errors.Is(err, domain.ErrSetIndex),
		errors.Is(err, domain.ErrEmptyName):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}
