package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "in"
	MovementTypeOUT        = "out"
	MovementTypeADJUSTMENT = "adjustment"
	MovementTypeTRANSFER   = "transfer"
)

// Tipos de referencia de un movimiento.
const (
	ReferenceInitialStock = "initial_stock"
)

// InventoryMovement registro inmutable de auditoría asociado a un InventoryRecord.
// Se crea junto con cada mutación del registro; nunca se actualiza ni se borra.
type InventoryMovement struct {
	ID               string
	InventoryID      string
	Type             string
	Quantity         int // delta
	PreviousQuantity int
	NewQuantity      int
	ReferenceType    string
	ReferenceID      string
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
}

// ValidMovementType informa si t es uno de los tipos admitidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT, MovementTypeTRANSFER:
		return true
	}
	return false
}
