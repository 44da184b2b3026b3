// Package redis adapta la caché auxiliar al puerto ports.CacheWriter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/demo-api/internal/application/ports"
	"github.com/jhoicas/demo-api/pkg/config"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.CacheWriter = (*Cache)(nil)

// writeTimeout límite de cada escritura; la caché nunca debe demorar un request.
const writeTimeout = 200 * time.Millisecond

// Cache escritor sobre un cliente go-redis.
type Cache struct {
	client goredis.Cmdable
}

// New construye el cliente si cfg tiene host. Devuelve (nil, false) si la caché está desactivada.
// No verifica conectividad: el cliente se conecta de forma perezosa.
func New(cfg config.RedisConfig) (*Cache, bool) {
	if !cfg.Enabled() {
		return nil, false
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Second,
		WriteTimeout: writeTimeout,
		ReadTimeout:  writeTimeout,
	})
	return &Cache{client: client}, true
}

// NewWithClient envuelve un cliente existente (tests, clusters).
func NewWithClient(client goredis.Cmdable) *Cache {
	return &Cache{client: client}
}

// Set escribe key con expiración ttl.
func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping verifica conectividad (solo para el log de arranque).
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close libera el cliente si es cerrable.
func (c *Cache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
