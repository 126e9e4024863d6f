package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo registros de stock por (producto, bodega) sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta el registro. El índice único (product_id, warehouse_id) produce domain.ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, reserved_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ProductID, rec.WarehouseID, rec.Quantity, rec.ReservedQuantity, rec.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert inventory", err)
	}
	return nil
}

// Get obtiene el registro de un producto en una bodega; nil si no existe.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reserved_quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.ReservedQuantity, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}
