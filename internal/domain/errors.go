package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicate lo devuelven los repositorios ante una violación de unicidad.
// Una fila inexistente no es error: los repositorios devuelven nil, nil.
var ErrDuplicate = errors.New("recurso duplicado")

// FieldError describe un campo de entrada que no cumple sus restricciones.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todos los campos inválidos de una misma petición.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con la lista completa de campos violados.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}

// InvalidReferenceError: la entidad referenciada (bodega, categoría, proveedor) no existe
// o no es visible/activa para la empresa.
type InvalidReferenceError struct {
	Entity  string
	ID      string
	Message string
}

func NewInvalidReferenceError(entity, id, msg string) *InvalidReferenceError {
	return &InvalidReferenceError{Entity: entity, ID: id, Message: msg}
}

func (e *InvalidReferenceError) Error() string { return e.Message }

// ConflictError: violación de unicidad (SKU duplicado, inventario duplicado).
type ConflictError struct {
	Message string
}

func NewConflictError(msg string) *ConflictError { return &ConflictError{Message: msg} }

func (e *ConflictError) Error() string { return e.Message }

// AuthorizationError: la empresa del token no coincide con la empresa solicitada.
type AuthorizationError struct {
	Message string
}

func NewAuthorizationError(msg string) *AuthorizationError { return &AuthorizationError{Message: msg} }

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError: la entidad principal de la operación no existe.
type NotFoundError struct {
	Entity  string
	Message string
}

func NewNotFoundError(entity, msg string) *NotFoundError {
	return &NotFoundError{Entity: entity, Message: msg}
}

func (e *NotFoundError) Error() string { return e.Message }

// InternalError envuelve fallos de almacenamiento o inesperados.
// Op identifica la operación; la causa nunca se expone al cliente salvo en modo debug.
type InternalError struct {
	Op  string
	Err error
}

func NewInternalError(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op + ": error interno"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// IsClientError informa si err pertenece a la taxonomía de errores del cliente.
func IsClientError(err error) bool {
	var (
		v *ValidationError
		r *InvalidReferenceError
		c *ConflictError
		a *AuthorizationError
		n *NotFoundError
	)
	return errors.As(err, &v) || errors.As(err, &r) || errors.As(err, &c) ||
		errors.As(err, &a) || errors.As(err, &n)
}
