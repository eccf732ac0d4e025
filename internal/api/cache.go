package api

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/haresh143heri/Ebasket-Return-App/internal/recon"
	"github.com/haresh143heri/Ebasket-Return-App/internal/tabstore"
)

// datasetCache holds the reconciled dataset for a short window so a burst of
// report requests reads the store once. Writes invalidate it immediately.
type datasetCache struct {
	store tabstore.Store
	log   *logrus.Logger
	ttl   time.Duration

	mu      sync.Mutex
	ds      *recon.Dataset
	builtAt time.Time
}

func newDatasetCache(st tabstore.Store, log *logrus.Logger, ttlSeconds int) *datasetCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &datasetCache{store: st, log: log, ttl: time.Duration(ttlSeconds) * time.Second}
}

func (c *datasetCache) get() (*recon.Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ds != nil && time.Since(c.builtAt) < c.ttl {
		return c.ds, nil
	}

	scans, err := c.store.ReadAll(tabstore.TabScans)
	if err != nil {
		return nil, err
	}
	rtv, err := c.store.ReadAll(tabstore.TabRTV)
	if err != nil {
		return nil, err
	}
	orders, err := c.store.ReadAll(tabstore.TabOrders)
	if err != nil {
		return nil, err
	}

	c.ds = recon.Build(scans, rtv, orders)
	c.builtAt = time.Now()
	for _, warn := range c.ds.Warnings {
		c.log.Warn("[recon.build] " + warn)
	}
	return c.ds, nil
}

func (c *datasetCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ds = nil
}
