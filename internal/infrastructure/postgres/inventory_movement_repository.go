package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, inventory_id, type, quantity, previous_quantity, new_quantity,
			reference_type, reference_id, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.InventoryID, m.Type, m.Quantity, m.PreviousQuantity, m.NewQuantity,
		nullable(m.ReferenceType), nullable(m.ReferenceID), m.Notes, nullable(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByInventory lista los movimientos de un registro de inventario, del más antiguo al más reciente.
func (r *InventoryMovementRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, inventory_id, type, quantity, previous_quantity, new_quantity,
			COALESCE(reference_type, ''), COALESCE(reference_id::text, ''), notes,
			COALESCE(created_by::text, ''), created_at
		FROM inventory_movements WHERE inventory_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.PreviousQuantity, &m.NewQuantity,
			&m.ReferenceType, &m.ReferenceID, &m.Notes, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// nullable convierte "" en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
