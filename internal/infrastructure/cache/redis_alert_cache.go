// Package cache guarda en Redis resultados de alertas ya calculados, con TTL corto.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
)

const keyPrefix = "stock-alerts:"

var _ alerts.Cache = (*RedisAlertCache)(nil)

// RedisAlertCache implementa alerts.Cache serializando los valores como JSON.
type RedisAlertCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAlertCache construye la caché. ttl debe ser positivo.
func NewRedisAlertCache(client *redis.Client, ttl time.Duration) *RedisAlertCache {
	return &RedisAlertCache{client: client, ttl: ttl}
}

// Get decodifica en dst el valor de key. Devuelve false si no existe.
func (c *RedisAlertCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return true, nil
}

// Set guarda value con el TTL configurado.
func (c *RedisAlertCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
