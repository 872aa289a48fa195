package components

import (
	"fmt"
	"log/slog"

	"thirdperson/internal/engine"
	"thirdperson/internal/locomotion"
)

// ThirdPersonController drives the object with a locomotion controller. It
// needs a CharacterController on the same object and an orientation
// reference, usually an OrbitCamera. An Animator on the object, if any,
// receives the animation parameters.
type ThirdPersonController struct {
	engine.BaseComponent

	Config locomotion.Config
	Camera locomotion.OrientationReference

	OnTick engine.EventWithArg[locomotion.Frame]
	OnJump engine.Event
	OnLand engine.Event

	ctrl      *locomotion.Controller
	last      locomotion.Frame
	wasGround bool
}

func NewThirdPersonController(cfg locomotion.Config, camera locomotion.OrientationReference) *ThirdPersonController {
	return &ThirdPersonController{Config: cfg, Camera: camera}
}

// Init builds the controller from the sibling components. Start calls it;
// call it directly to surface configuration errors.
func (t *ThirdPersonController) Init() error {
	if t.ctrl != nil {
		return nil
	}
	g := t.GetGameObject()
	body := engine.GetComponent[*CharacterController](g)
	if body == nil {
		return fmt.Errorf("components: %s has no CharacterController", g.Name)
	}

	deps := locomotion.Deps{Mover: body, Camera: t.Camera, Collider: body}
	if anim := engine.GetComponent[*Animator](g); anim != nil {
		deps.Sink = anim
	}
	ctrl, err := locomotion.New(t.Config, deps, g.Transform.Rotation.Y)
	if err != nil {
		return err
	}
	t.ctrl = ctrl
	t.wasGround = body.IsGrounded()
	return nil
}

func (t *ThirdPersonController) Start() {
	if err := t.Init(); err != nil {
		slog.Error("Third person controller disabled", "object", t.GetGameObject().Name, "error", err)
	}
}

func (t *ThirdPersonController) Update(deltaTime float32) {
	if t.ctrl == nil {
		return
	}
	frame := t.ctrl.Tick(deltaTime)
	t.last = frame
	if deltaTime <= 0 {
		return
	}

	t.GetGameObject().Transform.Rotation.Y = frame.Yaw
	if frame.Jumped {
		t.OnJump.Invoke()
	}
	if frame.Grounded && !t.wasGround {
		t.OnLand.Invoke()
	}
	t.wasGround = frame.Grounded
	t.OnTick.Invoke(frame)
}

// Reconfigure retunes the running controller.
func (t *ThirdPersonController) Reconfigure(cfg locomotion.Config) error {
	if t.ctrl == nil {
		t.Config = cfg
		return nil
	}
	if err := t.ctrl.Reconfigure(cfg); err != nil {
		return err
	}
	t.Config = cfg
	return nil
}

// Controller returns the underlying controller, or nil before Init.
func (t *ThirdPersonController) Controller() *locomotion.Controller {
	return t.ctrl
}

// Input returns the aggregator fed by the input layer.
func (t *ThirdPersonController) Input() *locomotion.InputState {
	if t.ctrl == nil {
		return nil
	}
	return t.ctrl.Input()
}

// LastFrame returns the result of the most recent tick.
func (t *ThirdPersonController) LastFrame() locomotion.Frame {
	return t.last
}
