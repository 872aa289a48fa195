package audio

import (
	"encoding/binary"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSynthesizeLengthAndFade(t *testing.T) {
	for _, c := range []Cue{CueJump, CueAirJump, CueLand} {
		pcm := Synthesize(c)
		if len(pcm) == 0 || len(pcm)%2 != 0 {
			t.Fatalf("Cue %d: Expected whole 16-bit samples, got %d bytes", c, len(pcm))
		}
		last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-2:]))
		if last > 1000 || last < -1000 {
			t.Errorf("Cue %d: Expected the tail to fade out, got %d", c, last)
		}
	}
}

func TestSpatializePansTowardSource(t *testing.T) {
	l := makeListener(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{Y: 1})

	_, pan := spatialize(l, rl.Vector3Scale(l.Right, 5), 1, 30)
	if pan != 1 {
		t.Errorf("Expected full right pan, got %v", pan)
	}
	_, pan = spatialize(l, rl.Vector3Scale(l.Right, -5), 1, 30)
	if pan != 0 {
		t.Errorf("Expected full left pan, got %v", pan)
	}
	_, pan = spatialize(l, rl.Vector3{Z: 5}, 1, 30)
	if pan != 0.5 {
		t.Errorf("Expected center pan straight ahead, got %v", pan)
	}
}

func TestSpatializeAttenuates(t *testing.T) {
	l := makeListener(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{Y: 1})

	near, _ := spatialize(l, rl.Vector3{Z: 3}, 1, 30)
	far, _ := spatialize(l, rl.Vector3{Z: 15}, 1, 30)
	behind, _ := spatialize(l, rl.Vector3{Z: -15}, 1, 30)
	gone, _ := spatialize(l, rl.Vector3{Z: 40}, 1, 30)

	if !(near > far && far > behind) {
		t.Errorf("Expected near > far > behind, got %v %v %v", near, far, behind)
	}
	if gone != 0 {
		t.Errorf("Expected silence beyond max distance, got %v", gone)
	}
}

func TestMakeListenerDefaults(t *testing.T) {
	l := makeListener(rl.Vector3{}, rl.Vector3{}, rl.Vector3{Y: 1})
	if l.Forward != (rl.Vector3{Z: -1}) {
		t.Errorf("Expected -Z forward for a zero vector, got %v", l.Forward)
	}
}

func TestClosedManagerIgnoresCalls(t *testing.T) {
	var m Manager
	m.SetListener(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{Y: 1})
	m.Play(CueJump, rl.Vector3{}, 1)
	m.Close()
}
