// Package modelcache provides a thread-safe, in-memory registry of models keyed
// by canonical name. The model package consults it to reuse degrees of freedom
// already computed for an equivalent model instance.
package modelcache

import (
	"sort"
	"sync"

	"github.com/specialistvlad/ramodel/internal/metrics"
	"github.com/specialistvlad/ramodel/internal/model"
)

var _ model.Cache = (*Cache)(nil)

// Cache implements model.Cache using a map and a mutex for thread-safe
// concurrent access.
type Cache struct {
	mu      sync.RWMutex
	models  map[string]*model.Model
	nextID  int
	metrics *metrics.Metrics
}

// New creates an empty cache. m may be nil.
func New(m *metrics.Metrics) *Cache {
	return &Cache{
		models:  make(map[string]*model.Model),
		metrics: m,
	}
}

// FindModel returns the cached model with the given canonical name, or nil.
// A nil cache finds nothing.
func (c *Cache) FindModel(name string) *model.Model {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	m, ok := c.models[name]
	c.mu.RUnlock()

	if ok {
		c.metrics.IncrementCacheHits()
	} else {
		c.metrics.IncrementCacheMisses()
	}
	return m
}

// AddModel stores m under its canonical name and assigns it an ID. If a model
// with that name is already cached, the cached instance is returned instead
// and added is false.
func (c *Cache) AddModel(m *model.Model) (canonical *model.Model, added bool) {
	name := m.PrintName(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.models[name]; ok {
		return existing, false
	}
	c.nextID++
	m.ID = c.nextID
	c.models[name] = m
	c.metrics.SetCachedModels(len(c.models))
	return m, true
}

// Delete removes the model with the given name and releases what it owns.
func (c *Cache) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.models[name]
	if !ok {
		return false
	}
	delete(c.models, name)
	m.Release()
	c.metrics.SetCachedModels(len(c.models))
	return true
}

// Len returns the number of cached models.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.models)
}

// Names returns the cached model names in sorted order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}
