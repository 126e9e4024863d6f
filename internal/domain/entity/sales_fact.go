package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesFact una observación de ventas por (producto, bodega, fecha).
// La carga un proceso externo; aquí solo se lee para calcular velocidad de venta.
type SalesFact struct {
	ProductID    string
	WarehouseID  string
	SaleDate     time.Time
	QuantitySold int
	Revenue      decimal.Decimal
}
