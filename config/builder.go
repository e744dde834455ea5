package config

import (
	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/cache"
)

// Key identifies a built sprite.
type Key struct {
	Preset string
	Angle  float64
	Depth  int
}

// KeyOf returns the cache key of a scene. The angle is dropped for presets
// that do not use it.
func KeyOf(s Scene) Key {
	k := Key{Preset: s.Preset, Angle: s.Angle, Depth: s.Depth}
	if p, err := Lookup(s.Preset); err == nil && !p.UsesAngle() {
		k.Angle = 0
	}
	return k
}

// Builder builds scenes and remembers the most recent sprites. It is safe
// for concurrent use.
type Builder struct {
	workers int
	sprites *cache.Cache[Key, fractal.Sprite]
}

// NewBuilder returns a Builder keeping up to capacity sprites. workers is
// passed to the parallel iterator.
func NewBuilder(workers, capacity int) *Builder {
	return &Builder{
		workers: workers,
		sprites: cache.New[Key, fractal.Sprite](capacity),
	}
}

// Build returns the sprite for s, building it on a cache miss.
func (b *Builder) Build(s Scene) (fractal.Sprite, error) {
	return b.sprites.GetOrCreate(KeyOf(s), func() (fractal.Sprite, error) {
		p, err := Lookup(s.Preset)
		if err != nil {
			return fractal.Sprite{}, err
		}
		return p.Build(s.Angle, s.Depth, b.workers)
	})
}

// Stats reports cache usage.
func (b *Builder) Stats() cache.Stats {
	return b.sprites.Stats()
}
