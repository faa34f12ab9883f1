package input

import (
	"consoleroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type LockMode int

const (
	Unlocked LockMode = iota
	Locked
)

func (m LockMode) String() string {
	if m == Locked {
		return "locked"
	}
	return "unlocked"
}

// Window is the part of the window backend the cursor lock drives.
type Window interface {
	// DisableCursor captures and hides the cursor.
	DisableCursor()
	// EnableCursor releases and shows the cursor.
	EnableCursor()
}

// CursorLock tracks whether mouse motion is captured for looking around.
type CursorLock struct {
	mode   LockMode
	window Window

	OnChange engine.Event[LockMode]
}

func NewCursorLock(window Window) *CursorLock {
	return &CursorLock{mode: Unlocked, window: window}
}

func (c *CursorLock) Mode() LockMode {
	return c.mode
}

func (c *CursorLock) Locked() bool {
	return c.mode == Locked
}

// Lock captures and hides the cursor. It does nothing if already locked.
func (c *CursorLock) Lock() {
	if c.mode == Locked {
		return
	}
	c.window.DisableCursor()
	c.mode = Locked
	c.OnChange.Invoke(c.mode)
}

// Unlock releases and shows the cursor. It does nothing if already unlocked.
func (c *CursorLock) Unlock() {
	if c.mode == Unlocked {
		return
	}
	c.window.EnableCursor()
	c.mode = Unlocked
	c.OnChange.Invoke(c.mode)
}

// RaylibWindow drives the cursor of the raylib window.
type RaylibWindow struct{}

func (RaylibWindow) DisableCursor() { rl.DisableCursor() }
func (RaylibWindow) EnableCursor()  { rl.EnableCursor() }
