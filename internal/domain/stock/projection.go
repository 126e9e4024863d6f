package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// SalesWindowDays ventana de ventas recientes para filtro y velocidad.
	SalesWindowDays = 30
	// NoVelocityFallbackDays proyección cuando hay stock pero la velocidad calculada es cero.
	NoVelocityFallbackDays = 90
)

// Velocity ventas de un par (producto, bodega) dentro de la ventana.
type Velocity struct {
	UnitsSold int // suma de unidades en la ventana
	SalesDays int // fechas distintas con al menos una fila
}

// HasRecentSales informa si existe al menos una fila de ventas en la ventana.
func (v Velocity) HasRecentSales() bool {
	return v.SalesDays > 0
}

// AvgDailySales promedio de unidades por día con ventas (no por día calendario).
// Cero si no hay días con ventas.
func (v Velocity) AvgDailySales() decimal.Decimal {
	if v.SalesDays <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(v.UnitsSold)).Div(decimal.NewFromInt(int64(v.SalesDays)))
}

// DaysUntilStockout = floor(disponible / promedio diario), mínimo 0.
// Con stock 0 el resultado es 0; con promedio 0 y stock positivo se usa NoVelocityFallbackDays.
func DaysUntilStockout(available int, v Velocity) int {
	if available <= 0 {
		return 0
	}
	if v.SalesDays <= 0 || v.UnitsSold <= 0 {
		return NoVelocityFallbackDays
	}
	// available / (units/days) == available*days / units, en enteros sin error de redondeo.
	days := int64(available) * int64(v.SalesDays) / int64(v.UnitsSold)
	if days < 0 {
		return 0
	}
	return int(days)
}

// WindowEnd último día (inclusive) de la ventana: la fecha UTC de now.
func WindowEnd(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WindowStart primer día (inclusive) de la ventana: WindowEnd - SalesWindowDays.
func WindowStart(now time.Time) time.Time {
	return WindowEnd(now).AddDate(0, 0, -SalesWindowDays)
}
