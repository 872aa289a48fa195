// locosim replays a YAML input script against the locomotion controller and
// prints a per-tick trace.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"thirdperson/internal/config"
	"thirdperson/internal/logger"
	"thirdperson/internal/sim"
)

func main() {
	configPath := flag.String("config", "configs/thirdperson.yaml", "tuning file")
	scriptPath := flag.String("script", "configs/walk_and_jump.yaml", "input script")
	format := flag.String("format", "text", "trace format: text or yaml")
	outPath := flag.String("o", "", "write the trace to a file instead of stdout")
	flag.Parse()

	if err := run(*configPath, *scriptPath, *format, *outPath); err != nil {
		slog.Error("locosim failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath, format, outPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	script, err := sim.LoadScript(scriptPath)
	if err != nil {
		return err
	}
	slog.Info("Running script", "script", scriptPath, "frames", script.TotalFrames(), "dt", script.DT)

	trace, err := sim.Run(cfg.Locomotion, script)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)

	switch format {
	case "text":
		err = trace.WriteText(w)
	case "yaml":
		err = trace.WriteYAML(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	final := trace.Final()
	slog.Info("Done", "ticks", len(trace), "x", final.X, "y", final.Y, "z", final.Z, "yaw", final.Yaw)
	return nil
}
