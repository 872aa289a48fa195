// Package locomotion implements a third-person character locomotion
// controller: gravity, multi-jump with coyote time, sprint and crouch speed
// modes, and smoothed camera-relative turning, fused into one displacement
// per tick.
//
// The controller never touches a renderer, an input device or a physics
// world directly. Those are reached through the interfaces in
// collaborators.go.
package locomotion

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame records what one tick did.
type Frame struct {
	Displacement  rl.Vector3
	Moved         bool // false when orientation and translation were held
	Grounded      bool
	VerticalSpeed float32
	TurnDelta     float32
	Yaw           float32
	Jumped        bool
	Mode          Mode
}

// Deps are the collaborators of one controller. Sink and Collider may be nil.
type Deps struct {
	Mover    Mover
	Camera   OrientationReference
	Sink     AnimationSink
	Collider ColliderShape
}

// Controller is the per-character locomotion state machine. Input setters
// may be called from any goroutine; Tick, Reconfigure and the accessors
// belong to the simulation goroutine.
type Controller struct {
	cfg  Config
	deps Deps

	input    *InputState
	jumps    jumpTracker
	vertical verticalIntegrator
	turn     orientation
}

// New validates cfg and builds a controller facing initialYaw degrees.
func New(cfg Config, deps Deps, initialYaw float32) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Mover == nil {
		return nil, errors.New("locomotion: mover is required")
	}
	if deps.Camera == nil {
		return nil, errors.New("locomotion: orientation reference is required")
	}
	return &Controller{
		cfg:   cfg,
		deps:  deps,
		input: newInputState(cfg, deps.Collider),
		turn:  orientation{yaw: NormalizeYaw(initialYaw)},
	}, nil
}

// Input returns the aggregator that the input layer feeds.
func (c *Controller) Input() *InputState {
	return c.input
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Reconfigure swaps the tuning between ticks. An invalid config is rejected
// and the current one stays in effect.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("locomotion: reconfigure: %w", err)
	}
	c.cfg = cfg
	c.input.setCrouchDims(cfg)
	c.jumps.clampCharges(cfg.Jumps)
	return nil
}

// SetCameraVerticalAxis enables or disables pitch look on the camera rig.
func (c *Controller) SetCameraVerticalAxis(enabled bool) {
	c.deps.Camera.SetVerticalAxisEnabled(enabled)
}

// Tick advances the character by dt seconds. A non-positive dt is a paused
// tick: nothing changes, nothing is emitted and a pending jump stays latched.
func (c *Controller) Tick(dt float32) Frame {
	if dt <= 0 {
		return c.idleFrame()
	}

	in := c.input.Snapshot()
	grounded := c.deps.Mover.IsGrounded()

	c.jumps.update(grounded, dt, c.cfg.Jumps)
	c.emitFloat(ParamMovementDirection, movementDirection(in.Move))

	c.vertical.integrate(grounded, dt, c.cfg)
	jumped := false
	if in.Jump && c.jumps.canJump(c.cfg) {
		c.vertical.jump(grounded, c.cfg)
		c.jumps.consume()
		jumped = true
	}

	c.emitBool(ParamIsJumping, !grounded)
	c.emitFloat(ParamJumpValue, c.vertical.velocity)

	mode := modeOf(in)
	frame := Frame{
		Grounded:      grounded,
		VerticalSpeed: c.vertical.velocity,
		Yaw:           c.turn.yaw,
		Jumped:        jumped,
		Mode:          mode,
	}
	if !active(in) {
		return frame
	}

	frame.TurnDelta = c.turn.step(in, c.deps.Camera.CurrentYaw(), dt, c.cfg)
	frame.Yaw = c.turn.yaw
	c.emitFloat(ParamCurrentRotation, frame.TurnDelta)

	horizontal := horizontalVelocity(in.Move, c.turn.yaw, mode, c.cfg)
	frame.Displacement = displacement(horizontal, c.vertical.velocity, dt)
	frame.Moved = true
	c.deps.Mover.Move(frame.Displacement)
	return frame
}

func (c *Controller) idleFrame() Frame {
	return Frame{
		Grounded:      c.jumps.state == Grounded,
		VerticalSpeed: c.vertical.velocity,
		Yaw:           c.turn.yaw,
		Mode:          modeOf(InputSnapshot{Sprint: c.input.sprint.Load(), Crouch: c.input.crouch.Load()}),
	}
}

// movementDirection is the blend-tree input: forward speed, or sideways
// magnitude when there is no forward component.
func movementDirection(move rl.Vector2) float32 {
	if move.Y == 0 {
		return abs32(move.X)
	}
	return move.Y
}

func (c *Controller) emitFloat(name string, v float32) {
	if c.deps.Sink != nil {
		c.deps.Sink.SetFloat(name, v)
	}
}

func (c *Controller) emitBool(name string, v bool) {
	if c.deps.Sink != nil {
		c.deps.Sink.SetBool(name, v)
	}
}

// Yaw returns the body heading in degrees.
func (c *Controller) Yaw() float32 { return c.turn.yaw }

// VerticalVelocity returns the vertical speed as a vector.
func (c *Controller) VerticalVelocity() rl.Vector3 {
	return rl.Vector3{X: 0, Y: c.vertical.velocity, Z: 0}
}

// GroundState returns the state seen on the last tick.
func (c *Controller) GroundState() GroundState { return c.jumps.state }

// RemainingJumps returns the unspent jump charges.
func (c *Controller) RemainingJumps() int { return c.jumps.remainingJumps }

// TimeSinceGrounded returns the seconds since the last grounded tick.
func (c *Controller) TimeSinceGrounded() float32 { return c.jumps.timeSinceGrounded }

// TurnVelocity returns the turn spring's hidden derivative.
func (c *Controller) TurnVelocity() float32 { return c.turn.turnVelocity }
