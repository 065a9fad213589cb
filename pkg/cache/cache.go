// Package cache contém o cache com expiração usado para resultados de consultas e narrativas
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/revenue-intelligence-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache associa (função, argumentos) a um valor com expiração própria.
// Não há single-flight: dois misses simultâneos para a mesma chave executam a consulta duas vezes.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	DeleteAll()
}

type TTLCache struct {
	mu    sync.RWMutex
	cache *ttlcache.Cache[string, any]
}

func New(defaultTTL time.Duration) *TTLCache {
	return &TTLCache{
		cache: ttlcache.New(
			ttlcache.WithTTL[string, any](defaultTTL),
			ttlcache.WithDisableTouchOnHit[string, any](),
		),
	}
}

// Start inicia a remoção periódica de itens expirados; bloqueia até Stop
func (c *TTLCache) Start() {
	c.cache.Start()
}

func (c *TTLCache) Stop() {
	c.cache.Stop()
}

func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item := c.cache.Get(key)
	if item == nil || item.IsExpired() {
		metrics.CacheLookups.WithLabelValues(prefixOf(key), "miss").Inc()
		return nil, false
	}

	metrics.CacheLookups.WithLabelValues(prefixOf(key), "hit").Inc()
	return item.Value(), true
}

func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Set(key, value, ttl)
}

func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Delete(key)
}

func (c *TTLCache) DeleteAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.DeleteAll()
}

// Remember retorna o valor em cache para a chave ou executa fn e guarda o resultado.
// Erros não são guardados.
func Remember[T any](c Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	if cached, ok := c.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := fn()
	if err != nil {
		return value, err
	}

	c.Set(key, value, ttl)
	return value, nil
}

// Key monta a chave a partir da identidade da função e dos argumentos serializados em JSON
func Key(fn string, args ...any) string {
	var b strings.Builder
	b.WriteString(fn)
	for _, arg := range args {
		b.WriteByte('|')
		encoded, err := json.Marshal(arg)
		if err != nil {
			b.WriteString(fmt.Sprintf("%v", arg))
			continue
		}
		b.Write(encoded)
	}
	return b.String()
}

func prefixOf(key string) string {
	if i := strings.IndexByte(key, '|'); i >= 0 {
		return key[:i]
	}
	return key
}
