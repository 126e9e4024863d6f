package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

const msgInternal = "error interno, intente más tarde"

// mapError traduce la taxonomía de errores de dominio a status HTTP y cuerpo.
// Todo lo que no sea un error de cliente es 500 con mensaje fijo.
func mapError(err error) (int, dto.ErrorResponse) {
	var (
		vErr *domain.ValidationError
		rErr *domain.InvalidReferenceError
		cErr *domain.ConflictError
		aErr *domain.AuthorizationError
		nErr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: vErr.Fields}
	case errors.As(err, &rErr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: rErr.Message}
	case errors.As(err, &cErr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: cErr.Message}
	case errors.As(err, &aErr):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: aErr.Message}
	case errors.As(err, &nErr):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: nErr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal}
	}
}

// ErrorResponder escribe errores de los casos de uso. Registra los internos con su causa;
// con debug activo añade la causa al cuerpo en Detail.
type ErrorResponder struct {
	log   *logger.Logger
	debug bool
}

// NewErrorResponder construye el responder. debug solo debe ser true fuera de producción.
func NewErrorResponder(log *logger.Logger, debug bool) *ErrorResponder {
	return &ErrorResponder{log: log, debug: debug}
}

// Respond escribe err en c.
func (r *ErrorResponder) Respond(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	if status == fiber.StatusInternalServerError {
		r.log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("company_id", GetCompanyID(c)).
			Msg("error interno en petición")
		if r.debug {
			body.Detail = err.Error()
		}
	}
	return c.Status(status).JSON(body)
}

// FiberErrorHandler maneja los errores que escapan de los handlers (404 de ruta, body demasiado grande, panics recuperados).
func (r *ErrorResponder) FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return r.Respond(c, err)
}
