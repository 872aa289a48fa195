package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"thirdperson/internal/locomotion"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  tick_rate: 50
locomotion:
  jumps: 2
  movement_speed: 4
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Window.TickRate != 50 {
		t.Errorf("Expected tick rate 50, got %d", cfg.Window.TickRate)
	}
	if cfg.Locomotion.Jumps != 2 || cfg.Locomotion.MovementSpeed != 4 {
		t.Errorf("Expected jumps 2 and speed 4, got %d and %v", cfg.Locomotion.Jumps, cfg.Locomotion.MovementSpeed)
	}
	if cfg.Locomotion.Gravity != locomotion.DefaultConfig().Gravity {
		t.Errorf("Expected untouched gravity to keep its default, got %v", cfg.Locomotion.Gravity)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("Expected default width, got %d", cfg.Window.Width)
	}
}

func TestParseRejectsInvalidLocomotion(t *testing.T) {
	_, err := Parse([]byte("locomotion:\n  gravity: 9.81\n"))
	if !errors.Is(err, locomotion.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseRejectsBadTickRate(t *testing.T) {
	if _, err := Parse([]byte("window:\n  tick_rate: 0\n")); err == nil {
		t.Error("Expected error for zero tick rate")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("locomotion: [")); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestFixedStep(t *testing.T) {
	w := WindowConfig{TickRate: 50}
	if got := w.FixedStep(); got != 0.02 {
		t.Errorf("Expected 0.02, got %v", got)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirdperson.yaml")
	if err := os.WriteFile(path, []byte("locomotion:\n  jumps: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("locomotion:\n  jumps: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Locomotion.Jumps != 3 {
			t.Errorf("Expected reloaded jumps 3, got %d", cfg.Locomotion.Jumps)
		}
	case err := <-w.Errors:
		t.Fatalf("Expected update, got error %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirdperson.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("locomotion:\n  turn_time: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Updates:
		t.Fatal("Expected invalid config to be rejected")
	case err := <-w.Errors:
		if !errors.Is(err, locomotion.ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload error")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thirdperson.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Expected second close to be a no-op, got %v", err)
	}
}
