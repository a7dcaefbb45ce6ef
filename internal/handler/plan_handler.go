package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetAllPlans GET /v1/plans
func (h *PlanHandler) GetAllPlans(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	plans, err := h.planService.GetAll(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plans)
}

// GetPlan GET /v1/plans/:day
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	plan, err := h.planService.Get(c.Context(), userID, c.Params("day"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plan)
}

// SavePlan PUT /v1/plans/:day
// Full-document overwrite. A plan with no exercises is a valid rest day.
func (h *PlanHandler) SavePlan(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req domain.Plan
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	plan, err := h.planService.Save(c.Context(), userID, c.Params("day"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plan)
}

// DeletePlan DELETE /v1/plans/:day
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if err := h.planService.Delete(c.Context(), userID, c.Params("day")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Bootstrap POST /v1/plans/bootstrap
// Seeds the built-in default week for first-time users.
func (h *PlanHandler) Bootstrap(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	seeded, err := h.planService.Bootstrap(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"seeded": seeded})
}

// UpdateReps PATCH /v1/plans/:day/exercises/:idx/reps
func (h *PlanHandler) UpdateReps(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
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

	plan, err := h.planService.UpdateReps(c.Context(), userID, c.Params("day"), idx, req.Set, req.Reps)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plan)
}

// UpdateWeight PATCH /v1/plans/:day/exercises/:idx/weight
func (h *PlanHandler) UpdateWeight(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
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

	plan, err := h.planService.UpdateWeight(c.Context(), userID, c.Params("day"), idx, req.OldWeight, req.NewWeight)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(plan)
}
