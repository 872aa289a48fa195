package locomotion

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid locomotion config")

// Config holds the tuning for one character. It is read-only while a tick runs.
type Config struct {
	MovementSpeed  float32 `yaml:"movement_speed"`
	SprintModifier float32 `yaml:"sprint_modifier"`
	CrouchModifier float32 `yaml:"crouch_modifier"`

	// Gravity is signed, negative pulls down.
	Gravity         float32 `yaml:"gravity"`
	FallingModifier float32 `yaml:"falling_modifier"`

	CoyoteTime float32 `yaml:"coyote_time"`
	Jumps      int     `yaml:"jumps"`
	JumpHeight float32 `yaml:"jump_height"`

	TurnDegreesPerSecond float32 `yaml:"turn_degrees_per_second"`
	TurnTime             float32 `yaml:"turn_time"`

	CrouchColliderHeight  float32 `yaml:"crouch_collider_height"`
	CrouchColliderYOffset float32 `yaml:"crouch_collider_y_offset"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MovementSpeed:         0.25,
		SprintModifier:        0.25,
		CrouchModifier:        0.25,
		Gravity:               -9.81,
		FallingModifier:       1,
		CoyoteTime:            0.25,
		Jumps:                 1,
		JumpHeight:            1,
		TurnDegreesPerSecond:  90,
		TurnTime:              0.1,
		CrouchColliderHeight:  0.5,
		CrouchColliderYOffset: 0.5,
	}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.MovementSpeed >= 0, "movement_speed must be >= 0, got %v", c.MovementSpeed)
	check(c.SprintModifier >= -1, "sprint_modifier must be >= -1, got %v", c.SprintModifier)
	check(c.CrouchModifier >= -1, "crouch_modifier must be >= -1, got %v", c.CrouchModifier)
	check(c.Gravity < 0, "gravity must be negative, got %v", c.Gravity)
	check(c.FallingModifier > 0, "falling_modifier must be > 0, got %v", c.FallingModifier)
	check(c.CoyoteTime >= 0, "coyote_time must be >= 0, got %v", c.CoyoteTime)
	check(c.Jumps >= 0, "jumps must be >= 0, got %d", c.Jumps)
	check(c.JumpHeight >= 0, "jump_height must be >= 0, got %v", c.JumpHeight)
	check(c.TurnDegreesPerSecond > 0, "turn_degrees_per_second must be > 0, got %v", c.TurnDegreesPerSecond)
	check(c.TurnTime > 0, "turn_time must be > 0, got %v", c.TurnTime)
	check(c.CrouchColliderHeight > 0, "crouch_collider_height must be > 0, got %v", c.CrouchColliderHeight)

	return errors.Join(errs...)
}

// jumpImpulse is the launch speed for one jump. The factor 3 (not 2) is part
// of the tuning: the arc tops out at 1.5x JumpHeight without falling_modifier.
func (c Config) jumpImpulse() float32 {
	return sqrt32(c.JumpHeight * -3 * c.Gravity)
}
