package dto

import "github.com/shopspring/decimal"

// SupplierDTO proveedor a contactar para reponer.
type SupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int          `json:"current_stock"` // cantidad - reservado
	Threshold         int          `json:"threshold"`     // umbral efectivo
	DaysUntilStockout int          `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"` // null si no hay proveedor activo
}

// LowStockAlertsResponse respuesta de GET /api/companies/:companyId/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
	Pagination  PageResponse       `json:"pagination"`
}

// CategorySummaryDTO agregado de alertas por categoría.
type CategorySummaryDTO struct {
	Category      string          `json:"category"`
	AlertCount    int             `json:"alert_count"`
	OutOfStock    int             `json:"out_of_stock"`
	Critical      int             `json:"critical"`
	AvgStockLevel decimal.Decimal `json:"avg_stock_level"`
}

// LowStockSummaryResponse respuesta de GET /api/companies/:companyId/alerts/low-stock/summary.
type LowStockSummaryResponse struct {
	Summary         []CategorySummaryDTO `json:"summary"`
	TotalCategories int                  `json:"total_categories"`
}
