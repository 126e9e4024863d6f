package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU de una empresa. El SKU es único en toda la plataforma.
// El stock vive por bodega en InventoryRecord.
type Product struct {
	ID                string
	CompanyID         string
	CategoryID        *string
	SupplierID        *string
	SKU               string
	Name              string
	Description       string
	Price             decimal.Decimal
	Cost              *decimal.Decimal
	Weight            *decimal.Decimal
	Dimensions        string
	LowStockThreshold *int // nil = usar el de la categoría o el valor por defecto
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
