package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-alerts-api/internal/application/provisioning"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var (
	_ provisioning.UnitOfWork = (*UnitOfWork)(nil)
	_ provisioning.Tx         = (*scopedTx)(nil)
)

// UnitOfWork abre transacciones sobre el pool. Cada Tx entrega repositorios atados a ella.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork construye la unidad de trabajo con el pool.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

// Begin inicia una transacción READ COMMITTED. La unicidad de SKU y de (producto, bodega)
// la garantizan los índices únicos, no el nivel de aislamiento.
func (u *UnitOfWork) Begin(ctx context.Context) (provisioning.Tx, error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &scopedTx{tx: tx}, nil
}

type scopedTx struct {
	tx pgx.Tx
}

func (t *scopedTx) Warehouses() repository.WarehouseRepository {
	return NewWarehouseRepository(t.tx)
}

func (t *scopedTx) Categories() repository.CategoryRepository {
	return NewCategoryRepository(t.tx)
}

func (t *scopedTx) Suppliers() repository.SupplierRepository {
	return NewSupplierRepository(t.tx)
}

func (t *scopedTx) Products() repository.ProductRepository {
	return NewProductRepository(t.tx)
}

func (t *scopedTx) Inventory() repository.InventoryRepository {
	return NewInventoryRepository(t.tx)
}

func (t *scopedTx) Movements() repository.InventoryMovementRepository {
	return NewInventoryMovementRepository(t.tx)
}

// Commit confirma la transacción. Un 23505 diferido aparece aquí como domain.ErrDuplicate.
func (t *scopedTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapWrite("commit transaction", err)
	}
	return nil
}

// Rollback deshace la transacción; sobre una tx ya cerrada no hace nada.
func (t *scopedTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
