package stock

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// UncategorizedLabel agrupa las alertas de productos sin categoría.
	UncategorizedLabel = "Uncategorized"
	// CriticalStockLevel disponible <= este valor cuenta como crítico.
	CriticalStockLevel = 5
)

// CategoryRollup agregado de alertas por categoría.
type CategoryRollup struct {
	Category      string
	AlertCount    int
	OutOfStock    int
	Critical      int
	AvgStockLevel decimal.Decimal // media del disponible, 2 decimales
}

// RollupItem lo mínimo que necesita el agregado por cada alerta.
type RollupItem struct {
	Category  string
	Available int
}

// Rollup agrupa por categoría ("Uncategorized" si vacía) y ordena por número de alertas
// descendente; empates por nombre de categoría para salida estable.
func Rollup(items []RollupItem) []CategoryRollup {
	type acc struct {
		count, out, critical int
		sum                  int64
	}
	groups := make(map[string]*acc)
	for _, it := range items {
		name := it.Category
		if name == "" {
			name = UncategorizedLabel
		}
		g, ok := groups[name]
		if !ok {
			g = &acc{}
			groups[name] = g
		}
		g.count++
		g.sum += int64(it.Available)
		if it.Available == 0 {
			g.out++
		}
		if it.Available <= CriticalStockLevel {
			g.critical++
		}
	}

	out := make([]CategoryRollup, 0, len(groups))
	for name, g := range groups {
		out = append(out, CategoryRollup{
			Category:      name,
			AlertCount:    g.count,
			OutOfStock:    g.out,
			Critical:      g.critical,
			AvgStockLevel: decimal.NewFromInt(g.sum).Div(decimal.NewFromInt(int64(g.count))).Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AlertCount != out[j].AlertCount {
			return out[i].AlertCount > out[j].AlertCount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
