package entity

import "time"

// Supplier proveedor de reposición (global a la plataforma).
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	LeadTimeDays int // días estimados de entrega
	IsActive     bool
	CreatedAt    time.Time
}
