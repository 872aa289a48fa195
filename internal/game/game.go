// Package game runs the interactive third-person demo.
package game

import (
	"log/slog"

	"thirdperson/internal/audio"
	"thirdperson/internal/components"
	"thirdperson/internal/config"
	"thirdperson/internal/engine"
	"thirdperson/internal/input"
	"thirdperson/internal/locomotion"
	"thirdperson/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Player *engine.GameObject
	World  *world.World
	Paused bool

	cfg        config.Config
	configPath string
	camera     *components.OrbitCamera
	controller *components.ThirdPersonController
	animator   *components.Animator
	poller     *input.Poller
	clock      *fixedStep
	hud        hud
	watcher    *config.Watcher
	audio      *audio.Manager
	ticks      int
	fallSpeed  float32
}

// New builds the level and the player. It does not open a window.
func New(cfg config.Config, configPath string, level world.Level) (*Game, error) {
	g := &Game{
		World:      world.New(),
		cfg:        cfg,
		configPath: configPath,
		poller:     input.NewPoller(input.DefaultBindings()),
		clock:      newFixedStep(cfg.Window.FixedStep()),
	}
	g.World.Build(level)

	if err := g.createPlayer(level.Spawn.Vector3()); err != nil {
		return nil, err
	}
	g.World.Start()
	g.hud = newHUD(cfg.Locomotion)
	return g, nil
}

func (g *Game) createPlayer(spawn rl.Vector3) error {
	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = spawn

	body := components.NewCharacterController()
	g.Player.AddComponent(body)

	g.animator = components.NewAnimator(rl.SkyBlue)
	g.Player.AddComponent(g.animator)

	g.camera = components.NewOrbitCamera(g.Player)
	g.applyCamera(g.cfg.Camera)

	g.controller = components.NewThirdPersonController(g.cfg.Locomotion, g.camera)
	g.Player.AddComponent(g.controller)
	if err := g.controller.Init(); err != nil {
		return err
	}

	g.controller.OnJump.AddListener(func() {
		slog.Debug("Jump", "remaining", g.controller.Controller().RemainingJumps())
		cue := audio.CueAirJump
		if g.controller.LastFrame().Grounded {
			cue = audio.CueJump
		}
		g.playCue(cue, 1)
	})
	g.controller.OnLand.AddListener(func() {
		slog.Debug("Landed", "position", g.Player.Transform.Position, "speed", g.fallSpeed)
		g.playCue(audio.CueLand, rl.Clamp(-g.fallSpeed/10, 0.2, 1))
	})
	g.controller.OnTick.AddListener(func(f locomotion.Frame) {
		if !f.Grounded {
			g.fallSpeed = f.VerticalSpeed
		}
	})

	g.World.Add(g.Player)

	rig := engine.NewGameObject("CameraRig")
	rig.AddComponent(g.camera)
	g.World.Add(rig)
	return nil
}

func (g *Game) applyCamera(c config.CameraConfig) {
	g.camera.Distance = c.Distance
	g.camera.Height = c.Height
	g.camera.Sensitivity = c.Sensitivity
	g.camera.MinPitch = c.MinPitch
	g.camera.MaxPitch = c.MaxPitch
	g.camera.Pitch = rl.Clamp(g.camera.Pitch, c.MinPitch, c.MaxPitch)
	g.camera.SetVerticalAxisEnabled(c.VerticalAxis)
}

// ApplyConfig swaps in a reloaded config. An invalid locomotion section is
// rejected and nothing changes.
func (g *Game) ApplyConfig(cfg config.Config) error {
	if err := g.controller.Reconfigure(cfg.Locomotion); err != nil {
		return err
	}
	g.applyCamera(cfg.Camera)
	if cfg.Window.TickRate != g.cfg.Window.TickRate {
		g.clock.SetStep(cfg.Window.FixedStep())
	}
	if cfg.Window.TargetFPS != g.cfg.Window.TargetFPS && rl.IsWindowReady() {
		rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	}
	g.cfg = cfg
	g.hud.tuning = cfg.Locomotion
	return nil
}

// Config returns the active config.
func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)
	rl.DisableCursor()
	g.hud.style()

	g.audio = audio.Open()
	defer g.audio.Close()

	if g.configPath != "" {
		w, err := config.Watch(g.configPath)
		if err != nil {
			slog.Warn("Config hot reload disabled", "path", g.configPath, "error", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	slog.Info("Demo started", "tick_rate", g.cfg.Window.TickRate, "jumps", g.cfg.Locomotion.Jumps)
	device := input.Raylib{}
	for !rl.WindowShouldClose() {
		g.Update(device, rl.GetFrameTime())
		g.Draw()
	}
	slog.Info("Demo stopped", "ticks", g.ticks)
}

// Update polls input once and advances the simulation by frameTime.
func (g *Game) Update(device input.Device, frameTime float32) {
	g.drainReloads()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.toggleCursor()
	}
	if rl.IsCursorHidden() {
		look := g.poller.Poll(device, g.controller.Input())
		g.camera.Look(look)
	}

	g.Step(frameTime)

	if g.audio != nil {
		cam := g.camera.GetRaylibCamera()
		g.audio.SetListener(cam.Position, rl.Vector3Subtract(cam.Target, cam.Position), cam.Up)
	}
}

func (g *Game) playCue(c audio.Cue, strength float32) {
	if g.audio != nil {
		g.audio.Play(c, g.Player.Transform.Position, strength)
	}
}

func (g *Game) toggleCursor() {
	if rl.IsCursorHidden() {
		rl.EnableCursor()
		g.poller.Reset(g.controller.Input())
		return
	}
	rl.DisableCursor()
}

// Step advances the world by frameTime scaled by the configured time scale.
// While paused every frame is a single zero-length tick.
func (g *Game) Step(frameTime float32) {
	if g.Paused {
		g.World.Update(0)
		return
	}
	n := g.clock.Advance(frameTime * g.cfg.Window.TimeScale)
	step := g.cfg.Window.FixedStep()
	for range n {
		g.World.Update(step)
		g.ticks++
	}
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.watcher.Updates:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.ApplyConfig(cfg); err != nil {
				slog.Warn("Reloaded config not applied", "error", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.hud.notice = err.Error()
		default:
			return
		}
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(25, 28, 36, 255))

	rl.BeginMode3D(g.camera.GetRaylibCamera())
	g.World.Draw()
	rl.EndMode3D()

	g.hud.draw(g)
	rl.EndDrawing()
}
