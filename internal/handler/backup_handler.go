package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liftcal/liftcal/internal/middleware"
	"github.com/liftcal/liftcal/internal/service"
)

type BackupHandler struct {
	backupService *service.BackupService
}

func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export POST /v1/export
// Snapshots the user's whole history and plans to object storage.
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	if h.backupService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "export storage is not configured"})
	}

	userID := middleware.GetUserID(c)
	url, err := h.backupService.Export(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
