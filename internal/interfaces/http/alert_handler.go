package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

type alertReader interface {
	ListAlerts(ctx context.Context, companyID string, page dto.PageRequest) (*dto.LowStockAlertsResponse, error)
	Summary(ctx context.Context, companyID string) (*dto.LowStockSummaryResponse, error)
}

// AlertHandler expone las alertas de stock bajo (protegido, solo lectura).
type AlertHandler struct {
	uc     alertReader
	errors *ErrorResponder
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc alertReader, errs *ErrorResponder) *AlertHandler {
	return &AlertHandler{uc: uc, errors: errs}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        page       query  int     false  "Página"             default(1)
// @Param        page_size  query  int     false  "Tamaño de página"   default(100)
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	out, err := h.uc.ListAlerts(c.Context(), GetCompanyID(c), page)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de alertas por categoría
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/summary [get]
func (h *AlertHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetCompanyID(c))
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(out)
}

// pageFromQuery lee page y page_size; ausentes toman el valor por defecto, no numéricos son error de validación.
func pageFromQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	p := dto.PageRequest{Page: dto.DefaultPage, PageSize: dto.DefaultPageSize}
	var fields []domain.FieldError
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "page", Message: "debe ser un entero"})
		}
		p.Page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "page_size", Message: "debe ser un entero"})
		}
		p.PageSize = n
	}
	if len(fields) > 0 {
		return p, domain.NewValidationError(fields...)
	}
	return p, p.Validate()
}
