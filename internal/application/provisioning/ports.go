package provisioning

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// UnitOfWork abre una transacción de BD. Es el único punto de adquisición del alcance transaccional.
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx alcance transaccional con repositorios atados a la misma transacción.
// Commit es el único punto de visibilidad. Rollback después de Commit no hace nada,
// por lo que el llamador puede diferirlo siempre.
type Tx interface {
	Warehouses() repository.WarehouseRepository
	Categories() repository.CategoryRepository
	Suppliers() repository.SupplierRepository
	Products() repository.ProductRepository
	Inventory() repository.InventoryRepository
	Movements() repository.InventoryMovementRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
