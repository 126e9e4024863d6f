package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// productCreator es lo que necesita el handler del caso de uso de alta.
type productCreator interface {
	Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error)
}

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc     productCreator
	errors *ErrorResponder
}

// NewProductHandler construye el handler.
func NewProductHandler(uc productCreator, errs *ErrorResponder) *ProductHandler {
	return &ProductHandler{uc: uc, errors: errs}
}

// Create godoc
// @Summary      Crear producto con stock inicial
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := GetIdentity(c)
	out, err := h.uc.Create(c.Context(), id.CompanyID, id.UserID, in)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
