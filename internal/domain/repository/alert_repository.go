package repository

import (
	"context"
	"time"
)

// SupplierContact datos del proveedor activo vinculado a un producto.
type SupplierContact struct {
	ID           string
	Name         string
	ContactEmail string
	LeadTimeDays int
}

// AlertCandidate fila cruda del read-model de alertas: un par (producto, bodega) activo
// de la empresa con su stock, umbrales disponibles y agregados de ventas de la ventana.
// Lo produce la DB; el motor de alertas resuelve umbral, filtros y proyección.
type AlertCandidate struct {
	ProductID         string
	ProductName       string
	SKU               string
	WarehouseID       string
	WarehouseName     string
	Quantity          int
	ReservedQuantity  int
	ProductThreshold  *int
	CategoryName      string // vacío si el producto no tiene categoría
	CategoryThreshold *int
	Supplier          *SupplierContact // nil si no hay proveedor activo
	UnitsSold         int              // suma de unidades vendidas en la ventana
	SalesDays         int              // fechas distintas con al menos una fila en la ventana
}

// AlertRepository consultas de solo lectura para el motor de alertas de stock bajo.
type AlertRepository interface {
	// ListLowStockCandidates devuelve los pares activos de la empresa con ventas entre las fechas
	// `since` y `until` (ambas inclusive). defaultThreshold es el umbral de último recurso usado
	// para el prefiltro.
	ListLowStockCandidates(ctx context.Context, companyID string, since, until time.Time, defaultThreshold int) ([]AlertCandidate, error)
}
