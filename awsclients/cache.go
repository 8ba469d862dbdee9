// Package awsclients memoizes one long-lived AWS service client per
// (service, region) pair. Clients are built lazily from a shared base
// config and survive for the rest of the process unless the cache is
// cleared around a credential refresh.
package awsclients

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// GlobalRegion is the canonical entry region for services whose
// resources are not regional but whose API still routes by region.
const GlobalRegion = "us-east-1"

// transportMaxAttempts is the SDK-level retry budget. Kept low because
// the backoff executor owns retry policy above the transport.
const transportMaxAttempts = 2

// Cache builds and memoizes service clients.
type Cache struct {
	mu      sync.Mutex
	cfg     aws.Config
	clients map[string]any
}

// NewCache returns a cache building clients from cfg.
func NewCache(cfg aws.Config) *Cache {
	return &Cache{
		cfg:     cfg,
		clients: make(map[string]any),
	}
}

// ClearAll drops every cached client. Called when credentials rotate so
// subsequent calls build clients under the new identity.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients = make(map[string]any)
}

// Config returns a copy of the base config.
func (c *Cache) Config() aws.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Copy()
}

// SetConfig replaces the base config and drops all cached clients.
func (c *Cache) SetConfig(cfg aws.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.clients = make(map[string]any)
}

func cacheKey(service, region string) string {
	return service + "/" + region
}

// get returns the cached client for (service, region), building and
// storing it on first use. An empty region pins the client to the
// global entry region.
func get[T any](c *Cache, service, region string, build func(aws.Config) T) T {
	if region == "" {
		region = GlobalRegion
	}
	key := cacheKey(service, region)

	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[key]; ok {
		return client.(T)
	}

	regional := c.cfg.Copy()
	regional.Region = region
	regional.RetryMaxAttempts = transportMaxAttempts

	client := build(regional)
	c.clients[key] = client
	return client
}
