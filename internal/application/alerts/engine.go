package alerts

import (
	"sort"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/internal/domain/stock"
)

// evaluatedAlert alerta calculada más la categoría, que solo usa el resumen.
type evaluatedAlert struct {
	alert    dto.LowStockAlertDTO
	category string
}

// evaluate aplica a cada candidato: umbral efectivo, predicado de stock bajo, filtro de
// ventas recientes y proyección de quiebre. Devuelve las alertas ordenadas por stock
// disponible ascendente (orden estable para empates).
func evaluate(candidates []repository.AlertCandidate) []evaluatedAlert {
	out := make([]evaluatedAlert, 0, len(candidates))
	for _, c := range candidates {
		available := c.Quantity - c.ReservedQuantity
		threshold := stock.ResolveThreshold(c.ProductThreshold, c.CategoryThreshold)
		if !stock.IsLowStock(available, threshold) {
			continue
		}
		velocity := stock.Velocity{UnitsSold: c.UnitsSold, SalesDays: c.SalesDays}
		if !velocity.HasRecentSales() {
			continue
		}

		a := dto.LowStockAlertDTO{
			ProductID:         c.ProductID,
			ProductName:       c.ProductName,
			SKU:               c.SKU,
			WarehouseID:       c.WarehouseID,
			WarehouseName:     c.WarehouseName,
			CurrentStock:      available,
			Threshold:         threshold,
			DaysUntilStockout: stock.DaysUntilStockout(available, velocity),
		}
		if c.Supplier != nil {
			a.Supplier = &dto.SupplierDTO{
				ID:           c.Supplier.ID,
				Name:         c.Supplier.Name,
				ContactEmail: c.Supplier.ContactEmail,
				LeadTimeDays: c.Supplier.LeadTimeDays,
			}
		}
		out = append(out, evaluatedAlert{alert: a, category: c.CategoryName})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].alert.CurrentStock < out[j].alert.CurrentStock
	})
	return out
}

// paginate devuelve la porción de la página solicitada (vacía si está fuera de rango).
func paginate(all []evaluatedAlert, p dto.PageRequest) []dto.LowStockAlertDTO {
	page := make([]dto.LowStockAlertDTO, 0, p.PageSize)
	start := p.Offset()
	if start >= len(all) {
		return page
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	for _, e := range all[start:end] {
		page = append(page, e.alert)
	}
	return page
}

// summarize agrega las alertas por categoría.
func summarize(all []evaluatedAlert) []dto.CategorySummaryDTO {
	items := make([]stock.RollupItem, 0, len(all))
	for _, e := range all {
		items = append(items, stock.RollupItem{Category: e.category, Available: e.alert.CurrentStock})
	}
	rollups := stock.Rollup(items)
	out := make([]dto.CategorySummaryDTO, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, dto.CategorySummaryDTO{
			Category:      r.Category,
			AlertCount:    r.AlertCount,
			OutOfStock:    r.OutOfStock,
			Critical:      r.Critical,
			AvgStockLevel: r.AvgStockLevel,
		})
	}
	return out
}
