package audio

import (
	"math"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener normalizes forward and derives the right vector from up.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	// Normalize forward, default to -Z if zero
	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{Z: -1}
	}

	right := rl.Vector3CrossProduct(l.Forward, up)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1}
	}
	return l
}

// Spatialize returns the gain in [0,1] and the pan in [-1,1] for a sound at
// pos. Gain falls off linearly to zero at maxDistance; sounds behind the
// listener are slightly quieter.
func (l Listener) Spatialize(pos rl.Vector3, maxDistance float32) (gain, pan float64) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0
	}
	gain = float64(1 - distance/maxDistance)
	if distance < 0.001 {
		return gain, 0
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	pan = math.Max(-1, math.Min(1, float64(rl.Vector3DotProduct(direction, l.Right))))

	if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
		gain *= 0.7 + 0.3*math.Abs(float64(frontDot))
	}
	return gain, pan
}

// Player mixes short synthesized cues into the default output device. A
// Player that failed to initialize drops every cue; muting and volume only
// change what is mixed, so sound can come back at any time.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	listener    Listener
	volume      float64
	muted       bool
	maxDistance float32
	initialized bool
}

// NewPlayer creates a player with master volume in [0,1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:       &beep.Mixer{},
		listener:    NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1}),
		volume:      volume,
		maxDistance: 15,
	}
}

// Init opens the speaker. Errors are not fatal, the game runs silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues are audible with the current settings.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.muted && p.volume > 0
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume clamps v to [0,1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = math.Max(0, math.Min(1, v))
	p.mu.Unlock()
}

// SetListener updates the listener position and orientation
func (p *Player) SetListener(pos, forward, up rl.Vector3) {
	p.mu.Lock()
	p.listener = NewListener(pos, forward, up)
	p.mu.Unlock()
}

// PlayBlip plays the console chirp from pos.
func (p *Player) PlayBlip(pos rl.Vector3) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || p.volume <= 0 {
		return
	}
	s, ok := p.place(NewBlip(sampleRate), pos)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// place wraps s in pan and volume for pos. The bool is false when the sound
// is out of range.
func (p *Player) place(s beep.Streamer, pos rl.Vector3) (beep.Streamer, bool) {
	gain, pan := p.listener.Spatialize(pos, p.maxDistance)
	gain *= p.volume
	if p.muted || gain <= 0 {
		return nil, false
	}
	return &effects.Volume{
		Streamer: &effects.Pan{Streamer: s, Pan: pan},
		Base:     2,
		Volume:   math.Log2(gain),
	}, true
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
