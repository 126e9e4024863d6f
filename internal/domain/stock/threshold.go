// Package stock contiene la lógica pura de alertas de stock bajo (servicios de dominio):
// resolución de umbral, predicado de stock bajo, velocidad de venta y proyección de quiebre.
package stock

// DefaultThreshold umbral de último recurso cuando ni el producto ni su categoría definen uno.
const DefaultThreshold = 10

// ResolveThreshold aplica la prioridad producto > categoría > DefaultThreshold.
func ResolveThreshold(productThreshold, categoryThreshold *int) int {
	if productThreshold != nil {
		return *productThreshold
	}
	if categoryThreshold != nil {
		return *categoryThreshold
	}
	return DefaultThreshold
}

// IsLowStock: disponible <= umbral efectivo.
func IsLowStock(available, threshold int) bool {
	return available <= threshold
}
