package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cleanstock-api/internal/application/analytics"
	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
)

// DashboardHandler maneja las consultas agregadas del panel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Indicadores generales
// @Description  Total de artículos, máquinas en préstamo, stock crítico y transacciones del mes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// UsageTrend godoc
// @Summary      Tendencia de consumo
// @Description  Salidas por día en los últimos N días, con los días sin movimiento en cero.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  path  int  false  "ventana en días (por defecto 30)"
// @Success      200  {array}   dto.TrendPointDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/usage-trend/{days} [get]
func (h *DashboardHandler) UsageTrend(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Params("days"))
	out, err := h.uc.UsageTrend(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Composition godoc
// @Summary      Composición del inventario por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CompositionPointDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/inventory-composition [get]
func (h *DashboardHandler) Composition(c *fiber.Ctx) error {
	out, err := h.uc.Composition(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
