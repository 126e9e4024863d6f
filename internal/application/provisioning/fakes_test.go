package provisioning_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/stock-alerts-api/internal/application/provisioning"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// memStore almacén en memoria que imita la semántica transaccional de Postgres:
// las escrituras de una Tx solo son visibles tras Commit, y Commit re-verifica unicidad.
type memStore struct {
	mu         sync.Mutex
	warehouses map[string]*entity.Warehouse
	categories map[string]*entity.Category
	suppliers  map[string]*entity.Supplier
	products   map[string]*entity.Product
	inventory  map[string]*entity.InventoryRecord
	movements  []*entity.InventoryMovement

	begins       int
	rollbacks    int
	beforeCommit func()
	movementErr  error
	beginErr     error
}

func newMemStore() *memStore {
	return &memStore{
		warehouses: make(map[string]*entity.Warehouse),
		categories: make(map[string]*entity.Category),
		suppliers:  make(map[string]*entity.Supplier),
		products:   make(map[string]*entity.Product),
		inventory:  make(map[string]*entity.InventoryRecord),
	}
}

func (s *memStore) Begin(_ context.Context) (provisioning.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.begins++
	return &memTx{s: s}, nil
}

func (s *memStore) productCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *memStore) inventoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inventory)
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

func (s *memStore) skuTakenLocked(sku string) bool {
	for _, p := range s.products {
		if p.SKU == sku {
			return true
		}
	}
	return false
}

func (s *memStore) pairTakenLocked(productID, warehouseID string) *entity.InventoryRecord {
	for _, r := range s.inventory {
		if r.ProductID == productID && r.WarehouseID == warehouseID {
			return r
		}
	}
	return nil
}

type memTx struct {
	s         *memStore
	products  []*entity.Product
	inventory []*entity.InventoryRecord
	movements []*entity.InventoryMovement
	closed    bool
}

func (t *memTx) Warehouses() repository.WarehouseRepository        { return txWarehouses{t} }
func (t *memTx) Categories() repository.CategoryRepository         { return txCategories{t} }
func (t *memTx) Suppliers() repository.SupplierRepository          { return txSuppliers{t} }
func (t *memTx) Products() repository.ProductRepository            { return txProducts{t} }
func (t *memTx) Inventory() repository.InventoryRepository         { return txInventory{t} }
func (t *memTx) Movements() repository.InventoryMovementRepository { return txMovements{t} }

func (t *memTx) Commit(_ context.Context) error {
	if t.closed {
		return fmt.Errorf("tx cerrada")
	}
	if t.s.beforeCommit != nil {
		t.s.beforeCommit()
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.closed = true
	for _, p := range t.products {
		if t.s.skuTakenLocked(p.SKU) {
			return fmt.Errorf("commit: %w", domain.ErrDuplicate)
		}
	}
	for _, r := range t.inventory {
		if t.s.pairTakenLocked(r.ProductID, r.WarehouseID) != nil {
			return fmt.Errorf("commit: %w", domain.ErrDuplicate)
		}
	}
	for _, p := range t.products {
		t.s.products[p.ID] = p
	}
	for _, r := range t.inventory {
		t.s.inventory[r.ID] = r
	}
	t.s.movements = append(t.s.movements, t.movements...)
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.s.mu.Lock()
	t.s.rollbacks++
	t.s.mu.Unlock()
	return nil
}

type txWarehouses struct{ t *memTx }

func (r txWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	return r.t.s.warehouses[id], nil
}

type txCategories struct{ t *memTx }

func (r txCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	return r.t.s.categories[id], nil
}

type txSuppliers struct{ t *memTx }

func (r txSuppliers) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	return r.t.s.suppliers[id], nil
}

type txProducts struct{ t *memTx }

func (r txProducts) Create(_ context.Context, p *entity.Product) error {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	if r.t.s.skuTakenLocked(p.SKU) {
		return fmt.Errorf("insert product: %w", domain.ErrDuplicate)
	}
	r.t.products = append(r.t.products, p)
	return nil
}

func (r txProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	for _, p := range r.t.products {
		if p.ID == id {
			return p, nil
		}
	}
	return r.t.s.products[id], nil
}

func (r txProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	for _, p := range r.t.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	for _, p := range r.t.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

type txInventory struct{ t *memTx }

func (r txInventory) Create(_ context.Context, rec *entity.InventoryRecord) error {
	r.t.inventory = append(r.t.inventory, rec)
	return nil
}

func (r txInventory) Get(_ context.Context, productID, warehouseID string) (*entity.InventoryRecord, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	for _, rec := range r.t.inventory {
		if rec.ProductID == productID && rec.WarehouseID == warehouseID {
			return rec, nil
		}
	}
	return r.t.s.pairTakenLocked(productID, warehouseID), nil
}

type txMovements struct{ t *memTx }

func (r txMovements) Create(_ context.Context, m *entity.InventoryMovement) error {
	if r.t.s.movementErr != nil {
		return r.t.s.movementErr
	}
	r.t.movements = append(r.t.movements, m)
	return nil
}

func (r txMovements) ListByInventory(_ context.Context, inventoryID string) ([]*entity.InventoryMovement, error) {
	r.t.s.mu.Lock()
	defer r.t.s.mu.Unlock()
	var out []*entity.InventoryMovement
	for _, m := range r.t.s.movements {
		if m.InventoryID == inventoryID {
			out = append(out, m)
		}
	}
	return out, nil
}
