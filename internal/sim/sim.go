package sim

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"thirdperson/internal/locomotion"
)

// Row is the state after one tick.
type Row struct {
	Tick           int     `yaml:"tick"`
	Time           float32 `yaml:"time"`
	X              float32 `yaml:"x"`
	Y              float32 `yaml:"y"`
	Z              float32 `yaml:"z"`
	Yaw            float32 `yaml:"yaw"`
	VerticalSpeed  float32 `yaml:"vertical_speed"`
	Grounded       bool    `yaml:"grounded"`
	Jumped         bool    `yaml:"jumped,omitempty"`
	Moved          bool    `yaml:"moved"`
	Mode           string  `yaml:"mode"`
	RemainingJumps int     `yaml:"remaining_jumps"`
	ColliderHeight float32 `yaml:"collider_height"`
}

type Trace []Row

// Final returns the last row, or a zero row for an empty trace.
func (t Trace) Final() Row {
	if len(t) == 0 {
		return Row{}
	}
	return t[len(t)-1]
}

// Run plays script against a fresh controller tuned by cfg.
func Run(cfg locomotion.Config, script Script) (Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	mover := newFloorMover(script.StartY)
	camera := &fixedCamera{yaw: script.CameraYaw}
	ctrl, err := locomotion.New(cfg, locomotion.Deps{
		Mover:    mover,
		Camera:   camera,
		Collider: mover,
	}, script.InitialYaw)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	trace := make(Trace, 0, script.TotalFrames())
	var prev Step
	var elapsed float32
	for i, step := range script.Steps {
		if step.CameraYaw != nil {
			camera.yaw = *step.CameraYaw
		}
		apply(ctrl.Input(), prev, step)
		slog.Debug("Sim step", "index", i, "frames", step.Frames, "move", step.Move)

		for f := 0; f < step.Frames; f++ {
			dt := script.DT
			if step.Paused {
				dt = 0
			}
			frame := ctrl.Tick(dt)
			elapsed += dt
			trace = append(trace, Row{
				Tick:           len(trace),
				Time:           elapsed,
				X:              mover.Position.X,
				Y:              mover.Position.Y,
				Z:              mover.Position.Z,
				Yaw:            frame.Yaw,
				VerticalSpeed:  frame.VerticalSpeed,
				Grounded:       frame.Grounded,
				Jumped:         frame.Jumped,
				Moved:          frame.Moved,
				Mode:           frame.Mode.String(),
				RemainingJumps: ctrl.RemainingJumps(),
				ColliderHeight: mover.height,
			})
		}
		prev = step
	}
	return trace, nil
}

// apply turns the difference between two steps into action phases.
func apply(in *locomotion.InputState, prev, next Step) {
	in.OnMove(rl.Vector2{X: next.Move[0], Y: next.Move[1]})
	toggle(prev.Sprint, next.Sprint, in.OnSprint)
	toggle(prev.Crouch, next.Crouch, in.OnCrouch)
	toggle(prev.TurnCamera, next.TurnCamera, in.OnTurnCamera)
	if next.Jump {
		in.OnJump(locomotion.PhaseStarted)
		in.OnJump(locomotion.PhasePerformed)
		in.OnJump(locomotion.PhaseCanceled)
	}
}

func toggle(was, is bool, fire func(locomotion.Phase)) {
	switch {
	case is && !was:
		fire(locomotion.PhaseStarted)
		fire(locomotion.PhasePerformed)
	case was && !is:
		fire(locomotion.PhaseCanceled)
	}
}

// WriteText prints the trace as aligned columns.
func (t Trace) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tick\ttime\tx\ty\tz\tyaw\tvy\tgrounded\tjumped\tmode\tjumps\t")
	for _, r := range t {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\t%.3f\t%t\t%t\t%s\t%d\t\n",
			r.Tick, r.Time, r.X, r.Y, r.Z, r.Yaw, r.VerticalSpeed, r.Grounded, r.Jumped, r.Mode, r.RemainingJumps)
	}
	return tw.Flush()
}

// WriteYAML encodes the trace as a YAML sequence.
func (t Trace) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode([]Row(t)); err != nil {
		return err
	}
	return enc.Close()
}
