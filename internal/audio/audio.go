// Package audio plays short synthesized cues for locomotion events, panned
// and attenuated relative to the camera.
package audio

import (
	"encoding/binary"
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 22050

type Cue int

const (
	CueJump Cue = iota
	CueAirJump
	CueLand
	cueCount
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Manager owns one sound per cue. A zero Manager, or one whose device
// failed to open, ignores every call.
type Manager struct {
	mu          sync.Mutex
	listener    Listener
	sounds      [cueCount]rl.Sound
	ready       bool
	Volume      float32
	MaxDistance float32
}

// Open starts the audio device and synthesizes the cues.
func Open() *Manager {
	m := &Manager{Volume: 0.6, MaxDistance: 30}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return m
	}
	for c := Cue(0); c < cueCount; c++ {
		pcm := Synthesize(c)
		m.sounds[c] = rl.LoadSoundFromWave(rl.NewWave(uint32(len(pcm)/2), sampleRate, 16, 1, pcm))
	}
	m.ready = true
	return m
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}
	for _, s := range m.sounds {
		rl.UnloadSound(s)
	}
	m.ready = false
	rl.CloseAudioDevice()
}

// SetListener updates the listener position and orientation
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = makeListener(pos, forward, up)
}

// Play fires cue at pos. strength scales the volume, e.g. by landing speed.
func (m *Manager) Play(c Cue, pos rl.Vector3, strength float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready || c < 0 || c >= cueCount {
		return
	}
	volume, pan := spatialize(m.listener, pos, m.Volume*strength, m.MaxDistance)
	s := m.sounds[c]
	rl.SetSoundVolume(s, volume)
	rl.SetSoundPan(s, pan)
	rl.PlaySound(s)
}

func makeListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	// Normalize forward, default to -Z if zero
	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	// right = forward x up
	right := rl.Vector3CrossProduct(l.Forward, up)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// spatialize returns volume and pan (0 left, 0.5 center, 1 right) for a
// source at pos.
func spatialize(l Listener, pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0.5
	}
	volume *= 1 - distance/maxDistance
	if distance <= 0.001 {
		return volume, 0.5
	}

	direction := rl.Vector3Scale(toSource, 1/distance)
	pan := rl.Clamp(0.5+rl.Vector3DotProduct(direction, l.Right)*0.5, 0, 1)

	// sounds behind are slightly quieter
	if front := rl.Vector3DotProduct(direction, l.Forward); front < 0 {
		volume *= 1 + 0.3*front
	}
	return volume, pan
}

// Synthesize renders cue as 16-bit mono PCM at sampleRate.
func Synthesize(c Cue) []byte {
	var (
		duration   float64
		start, end float64 // Hz
	)
	switch c {
	case CueJump:
		duration, start, end = 0.12, 330, 660
	case CueAirJump:
		duration, start, end = 0.12, 520, 1040
	default:
		duration, start, end = 0.09, 140, 70
	}

	n := int(duration * sampleRate)
	out := make([]byte, n*2)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := start + (end-start)*t
		phase += 2 * math.Pi * freq / sampleRate
		envelope := 1 - t
		sample := int16(math.Sin(phase) * envelope * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*2:], uint16(sample))
	}
	return out
}
