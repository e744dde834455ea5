// Package cache provides a small generic LRU cache.
//
// The fractal tools use it to memoize expensive results, chiefly iterated
// sprites keyed by scene parameters, so that flipping back and forth between
// depths or presets in the viewer does not recompute them.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
