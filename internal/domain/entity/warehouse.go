package entity

import "time"

// Warehouse representa una bodega de una empresa. Solo las bodegas activas reciben inventario.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
