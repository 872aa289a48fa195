package locomotion

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Phase is the lifecycle stage of an input action.
type Phase int

const (
	PhaseStarted Phase = iota
	PhasePerformed
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhasePerformed:
		return "performed"
	case PhaseCanceled:
		return "canceled"
	}
	return "unknown"
}

// InputSnapshot is the latched input read once at the start of a tick.
type InputSnapshot struct {
	Move         rl.Vector2
	Sprint       bool
	Crouch       bool
	Jump         bool
	CameraRotate bool
}

// InputState latches action events between ticks. Its setters are safe to
// call from a different goroutine than the one running Tick.
type InputState struct {
	move         atomic.Uint64 // packed float32 pair, X in the high word
	sprint       atomic.Bool
	crouch       atomic.Bool
	jump         atomic.Bool
	cameraRotate atomic.Bool

	collider ColliderShape
	crouched atomic.Pointer[colliderDims] // applied on crouch enter
	standing atomic.Pointer[colliderDims] // stored on crouch enter
}

type colliderDims struct {
	height float32
	center rl.Vector3
}

func newInputState(cfg Config, collider ColliderShape) *InputState {
	s := &InputState{collider: collider}
	s.setCrouchDims(cfg)
	return s
}

func (s *InputState) setCrouchDims(cfg Config) {
	s.crouched.Store(&colliderDims{
		height: cfg.CrouchColliderHeight,
		center: rl.Vector3{X: 0, Y: cfg.CrouchColliderYOffset, Z: 0},
	})
}

// OnMove overwrites the move vector. Each axis is clamped to [-1, 1].
func (s *InputState) OnMove(v rl.Vector2) {
	x := rl.Clamp(v.X, -1, 1)
	y := rl.Clamp(v.Y, -1, 1)
	s.move.Store(uint64(math.Float32bits(x))<<32 | uint64(math.Float32bits(y)))
}

// OnJump latches a jump request on the press edge.
func (s *InputState) OnJump(phase Phase) {
	if phase == PhasePerformed {
		s.jump.Store(true)
	}
}

// OnSprint tracks the sprint button level.
func (s *InputState) OnSprint(phase Phase) {
	if active, ok := levelOf(phase); ok {
		s.sprint.Store(active)
	}
}

// OnTurnCamera tracks the camera-rotate button level. While held, turning is
// relative to the body rather than the camera.
func (s *InputState) OnTurnCamera(phase Phase) {
	if active, ok := levelOf(phase); ok {
		s.cameraRotate.Store(active)
	}
}

// OnCrouch tracks the crouch button level and resizes the collider on the
// transitions. The standing collider is stored on enter and restored
// verbatim on exit.
func (s *InputState) OnCrouch(phase Phase) {
	active, ok := levelOf(phase)
	if !ok {
		return
	}
	if s.crouch.Swap(active) == active {
		return
	}
	if s.collider == nil {
		return
	}
	if active {
		s.standing.Store(&colliderDims{
			height: s.collider.ColliderHeight(),
			center: s.collider.ColliderCenter(),
		})
		crouched := s.crouched.Load()
		s.collider.SetCollider(crouched.height, crouched.center)
		return
	}
	if standing := s.standing.Load(); standing != nil {
		s.collider.SetCollider(standing.height, standing.center)
	}
}

// Snapshot reads the latched state and takes the pending jump request.
func (s *InputState) Snapshot() InputSnapshot {
	packed := s.move.Load()
	return InputSnapshot{
		Move: rl.Vector2{
			X: math.Float32frombits(uint32(packed >> 32)),
			Y: math.Float32frombits(uint32(packed)),
		},
		Sprint:       s.sprint.Load(),
		Crouch:       s.crouch.Load(),
		Jump:         s.jump.Swap(false),
		CameraRotate: s.cameraRotate.Load(),
	}
}

// JumpPending reports whether a jump press is waiting for the next tick.
func (s *InputState) JumpPending() bool {
	return s.jump.Load()
}

func levelOf(phase Phase) (active bool, ok bool) {
	switch phase {
	case PhaseStarted, PhasePerformed:
		return true, true
	case PhaseCanceled:
		return false, true
	}
	return false, false
}
