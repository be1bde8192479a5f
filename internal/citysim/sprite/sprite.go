// Package sprite implements the typed moving-entity registry: trains,
// helicopters, airplanes, ships, monsters, tornadoes, explosions, and
// buses, stored as a contiguous list with minimal lifetime/position
// state.
package sprite

import "github.com/google/uuid"

// Kind is the tagged sprite variant.
type Kind int

const (
	Train Kind = iota
	Helicopter
	Airplane
	Ship
	Monster
	Tornado
	Explosion
	Bus
)

func (k Kind) String() string {
	switch k {
	case Train:
		return "train"
	case Helicopter:
		return "helicopter"
	case Airplane:
		return "airplane"
	case Ship:
		return "ship"
	case Monster:
		return "monster"
	case Tornado:
		return "tornado"
	case Explosion:
		return "explosion"
	case Bus:
		return "bus"
	default:
		return "unknown"
	}
}

// Sprite is one moving entity. X/Y are in 1/16-tile units.
type Sprite struct {
	ID           uuid.UUID
	Kind         Kind
	Frame        int
	X, Y         int
	DestX, DestY int
	Count        int
	Dir          int
	Speed        int
	Flag         int
}

// Dead reports whether the sprite's frame has reached 0.
func (s *Sprite) Dead() bool { return s.Frame == 0 }

// Tile returns the sprite's current position in world tile coordinates.
func (s *Sprite) Tile() (int, int) { return s.X / 16, s.Y / 16 }

// Registry holds every live sprite.
type Registry struct {
	sprites []*Sprite
}

// NewRegistry returns an empty sprite registry.
func NewRegistry() *Registry { return &Registry{} }

// Spawn appends a new sprite at world tile coordinates (x, y) with the
// given time-to-live in ticks.
func (r *Registry) Spawn(kind Kind, x, y, count int) *Sprite {
	s := &Sprite{
		ID:    uuid.New(),
		Kind:  kind,
		Frame: 1,
		X:     x * 16,
		Y:     y * 16,
		Count: count,
	}
	r.sprites = append(r.sprites, s)
	return s
}

// All returns every live sprite, for read-only observation.
func (r *Registry) All() []*Sprite { return r.sprites }

// FindKind returns the first live sprite of the given kind, or nil.
func (r *Registry) FindKind(kind Kind) *Sprite {
	for _, s := range r.sprites {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

// Tick decrements every sprite's remaining lifetime and swap-removes
// any that expired or whose frame hit 0.
func (r *Registry) Tick() {
	i := 0
	for i < len(r.sprites) {
		s := r.sprites[i]
		if s.Count > 0 {
			s.Count--
		}
		if s.Count == 0 || s.Dead() {
			last := len(r.sprites) - 1
			r.sprites[i] = r.sprites[last]
			r.sprites = r.sprites[:last]
			continue
		}
		i++
	}
}
