package components

import (
	"consoleroom/internal/engine"
)

// Player marks the controllable avatar. Exactly one must exist.
type Player struct {
	engine.BaseComponent
}

func NewPlayer() *Player {
	return &Player{}
}

// Interactable marks an object that reacts to the interact key when the
// player is close. Its descendants carry the materials that get highlighted.
type Interactable struct {
	engine.BaseComponent
}

func NewInteractable() *Interactable {
	return &Interactable{}
}
