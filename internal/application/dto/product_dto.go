package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su inventario inicial.
// Los punteros distinguen "ausente" de "cero".
type CreateProductRequest struct {
	Name              string           `json:"name"`
	SKU               string           `json:"sku"`
	Description       string           `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	Weight            *decimal.Decimal `json:"weight"`
	Dimensions        string           `json:"dimensions"`
	CategoryID        *string          `json:"category_id"`
	SupplierID        *string          `json:"supplier_id"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	WarehouseID       string           `json:"warehouse_id"`
	InitialQuantity   *int             `json:"initial_quantity"`
}

// ProductResponse salida de un producto recién creado.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	CategoryID        *string         `json:"category_id"`
	SupplierID        *string         `json:"supplier_id"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
	WarehouseID       string          `json:"warehouse_id"`
	InventoryID       string          `json:"inventory_id"`
	InitialQuantity   int             `json:"initial_quantity"`
	CreatedAt         time.Time       `json:"created_at"`
}
