package locomotion

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative jumps", func(c *Config) { c.Jumps = -1 }, "jumps"},
		{"negative coyote", func(c *Config) { c.CoyoteTime = -0.1 }, "coyote_time"},
		{"upward gravity", func(c *Config) { c.Gravity = 9.81 }, "gravity"},
		{"zero turn time", func(c *Config) { c.TurnTime = 0 }, "turn_time"},
		{"zero turn rate", func(c *Config) { c.TurnDegreesPerSecond = 0 }, "turn_degrees_per_second"},
		{"reversing sprint", func(c *Config) { c.SprintModifier = -2 }, "sprint_modifier"},
		{"negative speed", func(c *Config) { c.MovementSpeed = -1 }, "movement_speed"},
		{"flat crouch collider", func(c *Config) { c.CrouchColliderHeight = 0 }, "crouch_collider_height"},
		{"zero falling modifier", func(c *Config) { c.FallingModifier = 0 }, "falling_modifier"},
		{"negative jump height", func(c *Config) { c.JumpHeight = -1 }, "jump_height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to name %q, got %q", tt.field, err.Error())
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jumps = -3
	cfg.CoyoteTime = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	for _, field := range []string{"jumps", "coyote_time"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Expected error to mention %q, got %q", field, err.Error())
		}
	}
}

func TestJumpImpulse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = -12
	cfg.JumpHeight = 3
	if got := cfg.jumpImpulse(); !approx(got, 10.392304, 1e-5) {
		t.Errorf("Expected impulse 10.3923, got %v", got)
	}
}
