package alerts

import "context"

// Cache caché de resultados de alertas. Las implementaciones fijan su propio TTL.
// Get devuelve false si la clave no existe.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
