package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/service"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// parseDate turns the :date path segment (yyyy-MM-dd) into a calendar date.
func parseDate(c *fiber.Ctx) (time.Time, error) {
	return domain.ParseDateKey(c.Params("date"))
}

func parseIndex(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}

// GetHistory GET /v1/workouts
func (h *WorkoutHandler) GetHistory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	workouts, err := h.workoutService.History(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	if workouts == nil {
		workouts = []*domain.Workout{}
	}
	return c.JSON(workouts)
}

// GetWorkout GET /v1/workouts/:date
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workout, err := h.workoutService.Get(c.Context(), userID, date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(workout)
}

// SaveWorkout PUT /v1/workouts/:date
// Full-document overwrite; saving an empty workout deletes it.
func (h *WorkoutHandler) SaveWorkout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req domain.Workout
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.Save(c.Context(), userID, date, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

// DeleteWorkout DELETE /v1/workouts/:date
func (h *WorkoutHandler) DeleteWorkout(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.workoutService.Delete(c.Context(), userID, date); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// ApplyTemplate POST /v1/workouts/:date/apply-template
// Seeds the date from the weekly plan for that weekday.
func (h *WorkoutHandler) ApplyTemplate(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workout, err := h.workoutService.ApplyTemplate(c.Context(), userID, date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"workout": workout})
}

// SyncPlan POST /v1/workouts/:date/sync-plan
// Pushes the logged workout's sets back into the weekly plan.
func (h *WorkoutHandler) SyncPlan(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plan, err := h.workoutService.SyncPlan(c.Context(), userID, date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plan)
}

// UpdateReps PATCH /v1/workouts/:date/exercises/:idx/reps
func (h *WorkoutHandler) UpdateReps(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	idx, err := parseIndex(c, "idx")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise index"})
	}

	var req struct {
		Set  int `json:"set"`
		Reps int `json:"reps"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.UpdateReps(c.Context(), userID, date, idx, req.Set, req.Reps)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

// UpdateWeight PATCH /v1/workouts/:date/exercises/:idx/weight
// Replaces oldWeight with newWeight across the exercise's sets. Weights
// compare as raw strings.
func (h *WorkoutHandler) UpdateWeight(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	idx, err := parseIndex(c, "idx")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise index"})
	}

	var req struct {
		OldWeight string `json:"oldWeight"`
		NewWeight string `json:"newWeight"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.UpdateWeight(c.Context(), userID, date, idx, req.OldWeight, req.NewWeight)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

// RenameExercise PATCH /v1/workouts/:date/exercises/:idx/name
func (h *WorkoutHandler) RenameExercise(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	idx, err := parseIndex(c, "idx")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise index"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.RenameExercise(c.Context(), userID, date, idx, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

// RemoveExercise DELETE /v1/workouts/:date/exercises/:idx
func (h *WorkoutHandler) RemoveExercise(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	idx, err := parseIndex(c, "idx")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid exercise index"})
	}

	workout, err := h.workoutService.RemoveExercise(c.Context(), userID, date, idx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}

// ReorderExercises POST /v1/workouts/:date/reorder
func (h *WorkoutHandler) ReorderExercises(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.Reorder(c.Context(), userID, date, req.From, req.To)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"workout": workout})
}
