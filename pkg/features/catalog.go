package features

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"contentkit/pkg/logger"
)

// ErrFeatureNotFound is returned by Get for an unknown feature id.
var ErrFeatureNotFound = errors.New("feature not found")

const catalogCacheKey = "feature_catalog"

// Catalog reads the feature documentation from a JSON file, keeping the
// parsed result in the cache it was handed.
type Catalog struct {
	path  string
	cache *Cache
	log   *logger.Logger
}

// NewCatalog creates a catalog reading from path. The cache is supplied
// by the caller so its size and TTL stay under host control.
func NewCatalog(path string, cache *Cache) *Catalog {
	return &Catalog{
		path:  path,
		cache: cache,
		log:   logger.GetLogger().WithComponent("feature_catalog"),
	}
}

// All returns every feature with screenshots in position order, loading
// the file lazily on first access and after cache expiry.
func (c *Catalog) All() ([]Feature, error) {
	if cached, ok := c.cache.Get(catalogCacheKey); ok {
		return cached.([]Feature), nil
	}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature catalog: %w", err)
	}

	var features []Feature
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil, fmt.Errorf("failed to parse feature catalog: %w", err)
	}

	sortScreenshots(features)
	c.cache.Set(catalogCacheKey, features)
	c.log.WithField("count", len(features)).Debug("Feature catalog loaded")
	return features, nil
}

// Get returns one feature by id.
func (c *Catalog) Get(id string) (*Feature, error) {
	features, err := c.All()
	if err != nil {
		return nil, err
	}
	for i := range features {
		if features[i].ID == id {
			return &features[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFeatureNotFound, id)
}

// Invalidate drops the cached catalog so the next read hits the file.
func (c *Catalog) Invalidate() {
	c.cache.Delete(catalogCacheKey)
}
