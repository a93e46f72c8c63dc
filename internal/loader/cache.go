package loader

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// documentCache provides thread-safe LRU caching for parsed documents.
type documentCache struct {
	cache *lru.Cache[string, *Document]
}

// newDocumentCache creates an LRU cache holding at most maxDocs documents.
func newDocumentCache(maxDocs int) (*documentCache, error) {
	c, err := lru.New[string, *Document](maxDocs)
	if err != nil {
		return nil, err
	}
	return &documentCache{cache: c}, nil
}

// Get retrieves a document by its cache key.
func (c *documentCache) Get(key string) (*Document, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a document in the cache.
func (c *documentCache) Put(key string, doc *Document) {
	c.cache.Add(key, doc)
}

// Len returns the current number of cached documents.
func (c *documentCache) Len() int {
	return c.cache.Len()
}
