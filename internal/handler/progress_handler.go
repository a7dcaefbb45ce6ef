package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress GET /v1/progress
// Per-exercise change between first and latest appearance, biggest weight
// gains first.
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	entries, err := h.progressService.Analyze(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}

// GetExerciseNames GET /v1/progress/exercises
func (h *ProgressHandler) GetExerciseNames(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	names, err := h.progressService.ExerciseNames(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(names)
}

// GetRepSeries GET /v1/progress/reps?exercise=<name>
// Chart data: one point per workout containing the exercise, oldest first.
func (h *ProgressHandler) GetRepSeries(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	exercise := c.Query("exercise")
	if exercise == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "exercise query parameter is required"})
	}

	points, err := h.progressService.RepSeries(c.Context(), userID, exercise)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(points)
}
