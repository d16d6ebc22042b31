package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// How long a remote entity glides toward a freshly received position,
// in seconds. Broadcasts arrive roughly once per frame, so this stays
// short.
const smoothDuration = 0.1

// Smoother keeps display-only positions for remote entities and eases them
// toward the latest network value. Session state is never touched; capture
// and collision checks always run on the raw mirrored positions.
type Smoother struct {
	entities map[string]*smoothed
}

type smoothed struct {
	x, y   float64
	tx, ty *gween.Tween
}

func NewSmoother() *Smoother {
	return &Smoother{entities: make(map[string]*smoothed)}
}

// Observe feeds a freshly mirrored position. The first sighting snaps, any
// later one retargets the tween from the current display position.
func (s *Smoother) Observe(id string, x, y float64) {
	e, known := s.entities[id]
	if !known {
		s.entities[id] = &smoothed{x: x, y: y}
		return
	}
	e.tx = gween.New(float32(e.x), float32(x), smoothDuration, ease.Linear)
	e.ty = gween.New(float32(e.y), float32(y), smoothDuration, ease.Linear)
}

// Update advances all tweens by dt seconds.
func (s *Smoother) Update(dt float32) {
	for _, e := range s.entities {
		if e.tx != nil {
			cur, done := e.tx.Update(dt)
			e.x = float64(cur)
			if done {
				e.tx = nil
			}
		}
		if e.ty != nil {
			cur, done := e.ty.Update(dt)
			e.y = float64(cur)
			if done {
				e.ty = nil
			}
		}
	}
}

// Pos returns the display position for an entity, if one is tracked.
func (s *Smoother) Pos(id string) (float64, float64, bool) {
	e, known := s.entities[id]
	if !known {
		return 0, 0, false
	}
	return e.x, e.y, true
}

func (s *Smoother) Forget(id string) {
	delete(s.entities, id)
}
