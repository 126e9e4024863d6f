// Package provisioning contiene el alta atómica de productos: producto, registro de inventario
// inicial y movimiento de auditoría en una sola transacción.
package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

const msgSKUExists = "el SKU ya existe"

// CreateProductUseCase orquesta el alta de un producto con su stock inicial.
type CreateProductUseCase struct {
	uow UnitOfWork
	log *logger.Logger
	now func() time.Time
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(uow UnitOfWork, log *logger.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{uow: uow, log: log, now: time.Now}
}

// Create valida la entrada y, dentro de una única transacción:
//  1. verifica que la bodega exista, sea de la empresa y esté activa;
//  2. verifica categoría y proveedor si vienen informados;
//  3. verifica que el SKU no exista en la plataforma;
//  4. crea el producto, re-verifica que no haya inventario para (producto, bodega),
//     crea el registro de inventario y el movimiento "in" de stock inicial.
//
// Cualquier fallo hace Rollback de todo. Una violación de unicidad detectada al insertar o
// al hacer Commit (carrera entre dos altas del mismo SKU) se devuelve como ConflictError.
func (uc *CreateProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in = normalizeInput(in)
	if err := ValidateCreateProduct(in); err != nil {
		return nil, err
	}

	tx, err := uc.uow.Begin(ctx)
	if err != nil {
		return nil, domain.NewInternalError("iniciar transacción", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := uc.checkReferences(ctx, tx, companyID, in); err != nil {
		return nil, err
	}

	existing, err := tx.Products().GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, domain.NewInternalError("buscar SKU", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(msgSKUExists)
	}

	now := uc.now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		CategoryID:        in.CategoryID,
		SupplierID:        in.SupplierID,
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		Price:             *in.Price,
		Cost:              in.Cost,
		Weight:            in.Weight,
		Dimensions:        in.Dimensions,
		LowStockThreshold: in.LowStockThreshold,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := tx.Products().Create(ctx, product); err != nil {
		return nil, classifyWriteError("crear producto", msgSKUExists, err)
	}

	// Re-verificación contra altas concurrentes del mismo SKU+bodega.
	dup, err := tx.Inventory().Get(ctx, product.ID, in.WarehouseID)
	if err != nil {
		return nil, domain.NewInternalError("verificar inventario", err)
	}
	if dup != nil {
		return nil, domain.NewConflictError("ya existe inventario para este producto en la bodega")
	}

	qty := *in.InitialQuantity
	record := &entity.InventoryRecord{
		ID:               uuid.New().String(),
		ProductID:        product.ID,
		WarehouseID:      in.WarehouseID,
		Quantity:         qty,
		ReservedQuantity: 0,
		UpdatedAt:        now,
	}
	if err := tx.Inventory().Create(ctx, record); err != nil {
		return nil, classifyWriteError("crear inventario", "ya existe inventario para este producto en la bodega", err)
	}

	movement := &entity.InventoryMovement{
		ID:               uuid.New().String(),
		InventoryID:      record.ID,
		Type:             entity.MovementTypeIN,
		Quantity:         qty,
		PreviousQuantity: 0,
		NewQuantity:      qty,
		ReferenceType:    entity.ReferenceInitialStock,
		ReferenceID:      product.ID,
		Notes:            "stock inicial",
		CreatedBy:        userID,
		CreatedAt:        now,
	}
	if err := tx.Movements().Create(ctx, movement); err != nil {
		return nil, domain.NewInternalError("crear movimiento", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyWriteError("confirmar transacción", msgSKUExists, err)
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("product_id", product.ID).
		Str("warehouse_id", in.WarehouseID).
		Str("sku", product.SKU).
		Int("initial_quantity", qty).
		Msg("producto creado")

	return &dto.ProductResponse{
		ID:                product.ID,
		CompanyID:         product.CompanyID,
		SKU:               product.SKU,
		Name:              product.Name,
		Price:             product.Price,
		CategoryID:        product.CategoryID,
		SupplierID:        product.SupplierID,
		LowStockThreshold: product.LowStockThreshold,
		WarehouseID:       record.WarehouseID,
		InventoryID:       record.ID,
		InitialQuantity:   record.Quantity,
		CreatedAt:         product.CreatedAt,
	}, nil
}

func (uc *CreateProductUseCase) checkReferences(ctx context.Context, tx Tx, companyID string, in dto.CreateProductRequest) error {
	wh, err := tx.Warehouses().GetByID(ctx, in.WarehouseID)
	if err != nil {
		return domain.NewInternalError("buscar bodega", err)
	}
	if wh == nil || wh.CompanyID != companyID || !wh.IsActive {
		return domain.NewInvalidReferenceError("warehouse", in.WarehouseID, "la bodega no existe, no pertenece a la empresa o está inactiva")
	}

	if in.CategoryID != nil {
		cat, err := tx.Categories().GetByID(ctx, *in.CategoryID)
		if err != nil {
			return domain.NewInternalError("buscar categoría", err)
		}
		if cat == nil {
			return domain.NewInvalidReferenceError("category", *in.CategoryID, "la categoría no existe")
		}
	}

	if in.SupplierID != nil {
		sup, err := tx.Suppliers().GetByID(ctx, *in.SupplierID)
		if err != nil {
			return domain.NewInternalError("buscar proveedor", err)
		}
		if sup == nil || !sup.IsActive {
			return domain.NewInvalidReferenceError("supplier", *in.SupplierID, "el proveedor no existe o está inactivo")
		}
	}
	return nil
}

// classifyWriteError convierte una violación de unicidad en ConflictError; el resto es interno.
func classifyWriteError(op, conflictMsg string, err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.NewConflictError(conflictMsg)
	}
	return domain.NewInternalError(op, err)
}
