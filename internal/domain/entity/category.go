package entity

import "time"

// Category agrupa productos (global a la plataforma).
// DefaultThreshold nil = la categoría no define umbral propio.
type Category struct {
	ID               string
	Name             string
	DefaultThreshold *int
	CreatedAt        time.Time
}
