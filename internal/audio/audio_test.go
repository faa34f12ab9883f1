package audio

import (
	"math"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := drain(osc)
	require.Len(t, samples, rate.N(50*time.Millisecond))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want +-1", i, s[0])
		}
	}
	assert.NoError(t, osc.Err())
}

func TestBlipShape(t *testing.T) {
	samples := drain(NewBlip(sampleRate))

	require.Len(t, samples, sampleRate.N(blipDuration))
	assert.Zero(t, samples[0][0], "starts silent")
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.01, "fades out")

	peak := 0.0
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		assert.Equal(t, s[0], s[1], "mono")
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.Greater(t, peak, 0.5)
}

func TestSpatialize(t *testing.T) {
	l := NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1})
	assert.Equal(t, rl.Vector3{X: 1}, l.Right)

	gain, pan := l.Spatialize(rl.Vector3{X: 3}, 15)
	assert.InDelta(t, 0.8, gain, 1e-6)
	assert.InDelta(t, 1, pan, 1e-6)

	gain, pan = l.Spatialize(rl.Vector3{X: -3}, 15)
	assert.InDelta(t, 0.8, gain, 1e-6)
	assert.InDelta(t, -1, pan, 1e-6)

	front, _ := l.Spatialize(rl.Vector3{Z: -6}, 15)
	behind, _ := l.Spatialize(rl.Vector3{Z: 6}, 15)
	assert.InDelta(t, 0.6, front, 1e-6)
	assert.InDelta(t, front, behind, 1e-9, "directly behind keeps full gain")

	quarter, _ := l.Spatialize(rl.Vector3{X: 4.2426, Z: 4.2426}, 15)
	assert.Less(t, quarter, front)

	gain, pan = l.Spatialize(rl.Vector3{}, 15)
	assert.Equal(t, 1.0, gain)
	assert.Zero(t, pan)

	gain, _ = l.Spatialize(rl.Vector3{Z: -20}, 15)
	assert.Zero(t, gain)
}

func TestListenerDegenerateForward(t *testing.T) {
	l := NewListener(rl.Vector3{}, rl.Vector3{}, rl.Vector3{Y: 1})
	assert.Equal(t, rl.Vector3{Z: -1}, l.Forward)
	assert.Equal(t, rl.Vector3{X: 1}, l.Right)
}

func TestPlayerPlace(t *testing.T) {
	p := NewPlayer(0.5)

	s, ok := p.place(NewBlip(sampleRate), rl.Vector3{X: 3})
	require.True(t, ok)
	vol, isVolume := s.(*effects.Volume)
	require.True(t, isVolume)
	assert.InDelta(t, math.Log2(0.4), vol.Volume, 1e-6)
	pan, isPan := vol.Streamer.(*effects.Pan)
	require.True(t, isPan)
	assert.InDelta(t, 1, pan.Pan, 1e-6)

	_, ok = p.place(NewBlip(sampleRate), rl.Vector3{Z: 100})
	assert.False(t, ok)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	assert.NotPanics(t, func() {
		p.PlayBlip(rl.Vector3{})
		p.Close()
	})
}

func TestSetVolumeClamps(t *testing.T) {
	p := NewPlayer(0.5)
	p.SetVolume(3)
	assert.Equal(t, 1.0, p.Volume())
	p.SetVolume(-1)
	assert.Zero(t, p.Volume())

	_, ok := p.place(NewBlip(sampleRate), rl.Vector3{X: 1})
	assert.False(t, ok, "muted player places nothing")
}

func TestVolumeRaisedFromZero(t *testing.T) {
	p := NewPlayer(0)
	assert.False(t, p.Enabled())

	p.SetVolume(0.5)
	assert.True(t, p.Enabled())
	_, ok := p.place(NewBlip(sampleRate), rl.Vector3{Z: -1})
	assert.True(t, ok)
}

func TestMuteKeepsVolume(t *testing.T) {
	p := NewPlayer(0.8)
	p.SetMuted(true)

	assert.True(t, p.Muted())
	assert.False(t, p.Enabled())
	assert.Equal(t, 0.8, p.Volume())
	_, ok := p.place(NewBlip(sampleRate), rl.Vector3{Z: -1})
	assert.False(t, ok)

	p.SetMuted(false)
	assert.True(t, p.Enabled())
}
