package input

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is one tick's worth of input: held keys, press edges and the mouse
// motion events received since the previous tick. Systems read it; only the
// game loop writes it.
type State struct {
	held         map[int32]bool
	pressed      map[int32]bool
	mousePressed map[rl.MouseButton]bool
	MouseMotion  []rl.Vector2
}

func NewState() *State {
	return &State{
		held:         make(map[int32]bool),
		pressed:      make(map[int32]bool),
		mousePressed: make(map[rl.MouseButton]bool),
	}
}

// Reset drops the press edges and motion of the previous tick. Held keys
// stay held.
func (s *State) Reset() {
	clear(s.pressed)
	clear(s.mousePressed)
	s.MouseMotion = s.MouseMotion[:0]
}

// SetKey records key as held or released. A released to held transition is
// a press edge.
func (s *State) SetKey(key int32, down bool) {
	if down && !s.held[key] {
		s.pressed[key] = true
	}
	s.held[key] = down
}

func (s *State) PressMouse(button rl.MouseButton) {
	s.mousePressed[button] = true
}

func (s *State) AddMotion(delta rl.Vector2) {
	s.MouseMotion = append(s.MouseMotion, delta)
}

func (s *State) KeyDown(key int32) bool {
	return s.held[key]
}

// KeyPressed is true only on the tick the key went down.
func (s *State) KeyPressed(key int32) bool {
	return s.pressed[key]
}

func (s *State) MousePressed(button rl.MouseButton) bool {
	return s.mousePressed[button]
}

// MouseDelta sums every motion event of the tick.
func (s *State) MouseDelta() rl.Vector2 {
	var d rl.Vector2
	for _, m := range s.MouseMotion {
		d = rl.Vector2Add(d, m)
	}
	return d
}

// Poll replaces the state with raylib's view of the current frame. Only the
// listed keys are tracked.
func (s *State) Poll(keys []int32) {
	s.Reset()
	for _, k := range keys {
		s.SetKey(k, rl.IsKeyDown(k))
		// raylib may see a press and release within one frame
		if rl.IsKeyPressed(k) {
			s.pressed[k] = true
		}
	}
	for _, b := range []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonRight} {
		if rl.IsMouseButtonPressed(b) {
			s.PressMouse(b)
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		s.AddMotion(d)
	}
}

var keyByName = map[string]int32{
	"A": rl.KeyA, "B": rl.KeyB, "C": rl.KeyC, "D": rl.KeyD, "E": rl.KeyE,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "I": rl.KeyI, "J": rl.KeyJ,
	"K": rl.KeyK, "L": rl.KeyL, "M": rl.KeyM, "N": rl.KeyN, "O": rl.KeyO,
	"P": rl.KeyP, "Q": rl.KeyQ, "R": rl.KeyR, "S": rl.KeyS, "T": rl.KeyT,
	"U": rl.KeyU, "V": rl.KeyV, "W": rl.KeyW, "X": rl.KeyX, "Y": rl.KeyY,
	"Z": rl.KeyZ,
	"SPACE":  rl.KeySpace,
	"ENTER":  rl.KeyEnter,
	"TAB":    rl.KeyTab,
	"ESCAPE": rl.KeyEscape,
	"UP":     rl.KeyUp,
	"DOWN":   rl.KeyDown,
	"LEFT":   rl.KeyLeft,
	"RIGHT":  rl.KeyRight,
}

// KeyByName maps a key name such as "E" or "space" to its raylib code.
func KeyByName(name string) (int32, bool) {
	k, ok := keyByName[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}
