package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// InventoryRepository define el puerto para los registros de stock por (producto, bodega).
// Se usa dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Create(ctx context.Context, record *entity.InventoryRecord) error
	Get(ctx context.Context, productID, warehouseID string) (*entity.InventoryRecord, error)
}
