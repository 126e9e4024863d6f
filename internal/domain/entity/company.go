package entity

import "time"

// Company representa un tenant del sistema. Toda bodega y producto pertenece a exactamente una.
type Company struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
