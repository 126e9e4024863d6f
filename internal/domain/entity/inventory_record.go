package entity

import "time"

// InventoryRecord es la línea de stock de un par (producto, bodega). Único por par.
type InventoryRecord struct {
	ID               string
	ProductID        string
	WarehouseID      string
	Quantity         int
	ReservedQuantity int
	UpdatedAt        time.Time
}

// Available devuelve el stock disponible: cantidad menos reservado.
func (r InventoryRecord) Available() int {
	return r.Quantity - r.ReservedQuantity
}
