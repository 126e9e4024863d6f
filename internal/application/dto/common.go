package dto

import "github.com/jhoicas/stock-alerts-api/internal/domain"

// Valores de paginación de los listados de alertas.
const (
	DefaultPage     = 1
	DefaultPageSize = 100
	MaxPageSize     = 1000
)

// PageRequest paginación por número de página.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Validate comprueba los rangos y devuelve todos los campos inválidos a la vez.
func (p PageRequest) Validate() error {
	var fields []domain.FieldError
	if p.Page < 1 {
		fields = append(fields, domain.FieldError{Field: "page", Message: "debe ser mayor o igual a 1"})
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		fields = append(fields, domain.FieldError{Field: "page_size", Message: "debe estar entre 1 y 1000"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Offset posición del primer elemento de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula el total de páginas (techo de total/pageSize).
func NewPageResponse(p PageRequest, total int) PageResponse {
	pages := 0
	if p.PageSize > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return PageResponse{Page: p.Page, PageSize: p.PageSize, TotalCount: total, TotalPages: pages}
}

// ErrorResponse cuerpo de error HTTP.
// Fields solo en errores de validación; Detail solo con depuración habilitada.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	Detail  string              `json:"detail,omitempty"`
}
