package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo read-model de alertas de stock bajo. Solo lectura; usa el pool directamente.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de consultas de alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Un único SELECT: ventas agregadas por (producto, bodega) dentro de la ventana, unidas al
// inventario activo de la empresa. El prefiltro por umbral usa la misma prioridad que el motor
// (producto > categoría > $3). El orden secundario (sku, bodega) hace la salida determinista.
const lowStockCandidatesQuery = `
	WITH recent_sales AS (
		SELECT sf.product_id, sf.warehouse_id,
			SUM(sf.quantity_sold)::int        AS units_sold,
			COUNT(DISTINCT sf.sale_date)::int AS sales_days
		FROM sales_facts sf
		JOIN products p ON p.id = sf.product_id
		WHERE p.company_id = $1 AND sf.sale_date >= $2::date AND sf.sale_date <= $4::date
		GROUP BY sf.product_id, sf.warehouse_id
	)
	SELECT p.id, p.name, p.sku, w.id, w.name,
		i.quantity, i.reserved_quantity,
		p.low_stock_threshold, COALESCE(c.name, ''), c.default_threshold,
		s.id, s.name, s.contact_email, s.lead_time_days,
		rs.units_sold, rs.sales_days
	FROM inventory i
	JOIN products p ON p.id = i.product_id
	JOIN warehouses w ON w.id = i.warehouse_id
	JOIN recent_sales rs ON rs.product_id = i.product_id AND rs.warehouse_id = i.warehouse_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id AND s.is_active
	WHERE p.company_id = $1
		AND w.company_id = $1
		AND p.is_active
		AND w.is_active
		AND (i.quantity - i.reserved_quantity) <= COALESCE(p.low_stock_threshold, c.default_threshold, $3)
	ORDER BY (i.quantity - i.reserved_quantity), p.sku, w.name`

// ListLowStockCandidates devuelve los pares (producto, bodega) activos de la empresa con al menos
// una venta entre since y until y stock disponible dentro del umbral.
func (r *AlertRepo) ListLowStockCandidates(ctx context.Context, companyID string, since, until time.Time, defaultThreshold int) ([]repository.AlertCandidate, error) {
	rows, err := r.q.Query(ctx, lowStockCandidatesQuery, companyID, since, defaultThreshold, until)
	if err != nil {
		return nil, fmt.Errorf("query low stock candidates: %w", err)
	}
	defer rows.Close()

	list := make([]repository.AlertCandidate, 0)
	for rows.Next() {
		var (
			c            repository.AlertCandidate
			supplierID   *string
			supplierName *string
			supplierMail *string
			leadTime     *int
		)
		if err := rows.Scan(
			&c.ProductID, &c.ProductName, &c.SKU, &c.WarehouseID, &c.WarehouseName,
			&c.Quantity, &c.ReservedQuantity,
			&c.ProductThreshold, &c.CategoryName, &c.CategoryThreshold,
			&supplierID, &supplierName, &supplierMail, &leadTime,
			&c.UnitsSold, &c.SalesDays,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		if supplierID != nil {
			c.Supplier = &repository.SupplierContact{ID: *supplierID}
			if supplierName != nil {
				c.Supplier.Name = *supplierName
			}
			if supplierMail != nil {
				c.Supplier.ContactEmail = *supplierMail
			}
			if leadTime != nil {
				c.Supplier.LeadTimeDays = *leadTime
			}
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
