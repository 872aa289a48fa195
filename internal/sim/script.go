// Package sim replays scripted input against a locomotion controller on a
// flat floor, without a window.
package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a timed input sequence.
//
//	dt: 0.02
//	steps:
//	  - frames: 10
//	    move: [0, 1]
//	  - frames: 1
//	    jump: true
type Script struct {
	DT         float32 `yaml:"dt"`
	InitialYaw float32 `yaml:"initial_yaw"`
	CameraYaw  float32 `yaml:"camera_yaw"`
	StartY     float32 `yaml:"start_y"`
	Steps      []Step  `yaml:"steps"`
}

// Step holds one input state for Frames ticks. Level inputs (move, sprint,
// crouch, turn_camera) persist only for the step; Jump is pressed on the
// step's first tick.
type Step struct {
	Frames     int        `yaml:"frames"`
	Move       [2]float32 `yaml:"move"`
	Sprint     bool       `yaml:"sprint"`
	Crouch     bool       `yaml:"crouch"`
	Jump       bool       `yaml:"jump"`
	TurnCamera bool       `yaml:"turn_camera"`
	CameraYaw  *float32   `yaml:"camera_yaw,omitempty"`
	Paused     bool       `yaml:"paused"`
}

func (s Script) Validate() error {
	var errs []error
	if s.DT <= 0 {
		errs = append(errs, fmt.Errorf("dt must be > 0, got %v", s.DT))
	}
	if len(s.Steps) == 0 {
		errs = append(errs, errors.New("script has no steps"))
	}
	for i, st := range s.Steps {
		if st.Frames <= 0 {
			errs = append(errs, fmt.Errorf("step %d: frames must be > 0, got %d", i, st.Frames))
		}
	}
	return errors.Join(errs...)
}

// TotalFrames is the number of ticks the script runs.
func (s Script) TotalFrames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("sim: load %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("sim: %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}
