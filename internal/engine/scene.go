package engine

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

var (
	ErrNoMatch       = errors.New("no matching object")
	ErrMultipleMatch = errors.New("more than one matching object")
)

// Scene is a flat registry of every GameObject, children included,
// indexed by UID.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      *intmap.Map[uint64, *GameObject]
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      intmap.New[uint64, *GameObject](64),
	}
}

// AddGameObject registers g and any descendants not yet in the scene.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = intmap.New[uint64, *GameObject](64)
	}
	if _, exists := s.uidMap.Get(g.UID); !exists {
		g.Scene = s
		s.GameObjects = append(s.GameObjects, g)
		s.uidMap.Put(g.UID, g)
	}
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Each calls fn for every active object carrying a component of type T.
func Each[T Component](s *Scene, fn func(g *GameObject, c T)) {
	for _, g := range s.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				fn(g, typed)
				break
			}
		}
	}
}

// Query returns every active object carrying a component of type T.
func Query[T Component](s *Scene) []*GameObject {
	var out []*GameObject
	Each(s, func(g *GameObject, _ T) {
		out = append(out, g)
	})
	return out
}

// Single returns the only object carrying T. It fails when there are zero
// or several matches.
func Single[T Component](s *Scene) (*GameObject, T, error) {
	var (
		found *GameObject
		comp  T
		count int
	)
	Each(s, func(g *GameObject, c T) {
		if count == 0 {
			found, comp = g, c
		}
		count++
	})
	switch {
	case count == 0:
		var zero T
		return nil, zero, fmt.Errorf("single %T: %w", zero, ErrNoMatch)
	case count > 1:
		var zero T
		return nil, zero, fmt.Errorf("single %T: %w (%d)", zero, ErrMultipleMatch, count)
	}
	return found, comp, nil
}
