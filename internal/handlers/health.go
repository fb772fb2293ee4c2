package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/config"
	"github.com/proplens/proplens/internal/services"
	"gorm.io/gorm"
)

// HealthHandler handles the liveness probe
type HealthHandler struct {
	Cfg *config.Config
	DB  *gorm.DB
}

// GetHealth handles GET /health
// @Summary Service health
// @Description Reports database and identity provider reachability
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
