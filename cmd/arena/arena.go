package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/config"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"
	"github.com/guiMendel/boteco-brawl-sub000/internal/physics"
	"github.com/guiMendel/boteco-brawl-sub000/internal/world"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pixelsPerUnit = 32
	playerSpeed   = 8
	jumpSpeed     = 12
	rayLength     = 30
)

type arena struct {
	world      *world.World
	watcher    *config.Watcher
	camera     rl.Camera2D
	scenePath  string
	configPath string

	paused   bool
	contacts int
}

func newArena(w *world.World, scenePath, configPath string) *arena {
	a := &arena{
		world:      w,
		scenePath:  scenePath,
		configPath: configPath,
		camera:     rl.Camera2D{Zoom: pixelsPerUnit},
	}
	w.Physics.Resolved.AddListener(func(physics.CollisionData) {
		a.contacts++
	})
	return a
}

func (a *arena) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(1280, 720, "Physics Arena")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	for !rl.WindowShouldClose() {
		a.reloadChanged()
		a.Update()
		a.Draw()
	}
}

// reloadChanged applies edits made to watched files since the last frame.
// It only runs between ticks.
func (a *arena) reloadChanged() {
	if a.watcher == nil {
		return
	}
	for _, path := range a.watcher.Drain() {
		switch {
		case sameFile(path, a.configPath):
			cfg, err := config.Load(a.configPath)
			if err == nil {
				err = a.world.ApplyConfig(cfg)
			}
			if err != nil {
				log.Printf("Arena: keeping previous config: %v", err)
			}
		case sameFile(path, a.scenePath):
			if err := a.reloadScene(); err != nil {
				log.Printf("Arena: %v", err)
			}
		}
	}
	select {
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("Arena: watcher: %v", err)
		}
	default:
	}
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func (a *arena) reloadScene() error {
	for _, g := range append([]*engine.GameObject(nil), a.world.Scene.GameObjects...) {
		if g.Parent == nil {
			a.world.Destroy(g)
		}
	}
	return a.world.LoadScene(a.scenePath)
}

func (a *arena) player() *engine.GameObject {
	return a.world.Scene.FindByName("Player")
}

func (a *arena) Update() {
	a.camera.Offset = rl.Vector2{X: float32(rl.GetScreenWidth()) / 2, Y: float32(rl.GetScreenHeight()) / 2}

	if rl.IsKeyPressed(rl.KeyP) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := a.world.SaveScene(a.scenePath); err != nil {
			log.Printf("Arena: %v", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.world.Physics.LogStats()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.spawnCrate(rl.GetScreenToWorld2D(rl.GetMousePosition(), a.camera))
	}

	a.controlPlayer()

	a.contacts = 0
	if a.paused {
		if rl.IsKeyPressed(rl.KeyN) {
			a.world.Physics.Step(a.world.Simulation.Timestep)
		}
		return
	}
	a.world.Update(rl.GetFrameTime())
}

func (a *arena) controlPlayer() {
	player := a.player()
	if player == nil {
		return
	}
	body := engine.GetComponent[*components.Rigidbody](player)
	if body == nil {
		return
	}

	body.Velocity.X = 0
	if rl.IsKeyDown(rl.KeyA) {
		body.Velocity.X -= playerSpeed
	}
	if rl.IsKeyDown(rl.KeyD) {
		body.Velocity.X += playerSpeed
	}
	if rl.IsKeyPressed(rl.KeySpace) && a.grounded(player) {
		body.Velocity.Y = -jumpSpeed
	}
	if rl.IsKeyPressed(rl.KeyS) {
		for _, g := range a.world.Scene.GameObjects {
			if effector := engine.GetComponent[*components.PlatformEffector](g); effector != nil {
				effector.RequestDrop(player)
			}
		}
	}
}

// grounded casts the player's colliders a short way down.
func (a *arena) grounded(player *engine.GameObject) bool {
	colliders := engine.GetComponentsInChildren[*components.Collider](player)
	if len(colliders) == 0 {
		return false
	}
	return a.world.Physics.ColliderCastAny(colliders, player.WorldPosition(), math32.Pi/2, 0.1, physics.CollisionFilter{}, 1)
}

func (a *arena) spawnCrate(at rl.Vector2) {
	crate := engine.NewGameObject(fmt.Sprintf("Crate_%d", len(a.world.Scene.GameObjects)))
	crate.Tags = []string{"spawned"}
	crate.Transform.Position = at
	crate.AddComponent(components.NewRigidbody(components.KinematicsDynamic))
	crate.AddComponent(components.NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false))
	a.world.Spawn(crate)
}

func (a *arena) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.BeginMode2D(a.camera)
	for _, c := range a.world.Physics.Colliders() {
		drawShape(c.WorldShape(), colliderColor(c))
	}
	for _, contact := range a.world.Physics.Contacts() {
		from := contact.Source.Owner().WorldPosition()
		to := rl.Vector2Add(from, contact.Normal)
		rl.DrawLineEx(from, to, 0.05, rl.Red)
	}
	a.drawMouseRay()
	rl.EndMode2D()

	a.DrawUI()
	rl.EndDrawing()
}

// drawMouseRay casts from the player toward the cursor.
func (a *arena) drawMouseRay() {
	player := a.player()
	if player == nil {
		return
	}
	origin := player.WorldPosition()
	toMouse := rl.Vector2Subtract(rl.GetScreenToWorld2D(rl.GetMousePosition(), a.camera), origin)
	angle := math32.Atan2(toMouse.Y, toMouse.X)

	filter := physics.NewCollisionFilter(player)
	end := rl.Vector2Add(origin, rl.Vector2Scale(rl.Vector2{X: math32.Cos(angle), Y: math32.Sin(angle)}, rayLength))
	if hit, ok := a.world.Physics.Raycast(origin, angle, rayLength, filter); ok {
		end = hit.Point
		rl.DrawCircleV(hit.Point, 0.15, rl.Orange)
	}
	rl.DrawLineEx(origin, end, 0.03, rl.Fade(rl.Orange, 0.6))
}

func (a *arena) DrawUI() {
	solid, triggers := 0, 0
	for _, c := range a.world.Physics.Colliders() {
		if c.IsTrigger() {
			triggers++
		} else {
			solid++
		}
	}
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("tick %d  colliders %d  triggers %d  contacts %d  dropped %d",
		a.world.Physics.Tick(), solid, triggers, a.contacts, a.world.Simulation.Dropped()), 10, 34, 20, rl.DarkGray)
	rl.DrawText("A/D move  SPACE jump  S drop  click spawn  P pause  N step  F5 save  TAB stats", 10, 58, 16, rl.Gray)
}

func colliderColor(c *components.Collider) rl.Color {
	if c.IsTrigger() {
		return rl.Fade(rl.Lime, 0.3)
	}
	body := c.Rigidbody()
	switch {
	case body == nil || body.Kinematics == components.KinematicsStatic:
		return rl.DarkGray
	case body.Kinematics == components.KinematicsKinematic:
		return rl.SkyBlue
	}
	return rl.Maroon
}

func drawShape(shape geom.Shape, color rl.Color) {
	switch shape.Kind {
	case geom.KindRectangle:
		rect := rl.NewRectangle(shape.Center.X, shape.Center.Y, shape.Width, shape.Height)
		origin := rl.Vector2{X: shape.Width / 2, Y: shape.Height / 2}
		rl.DrawRectanglePro(rect, origin, shape.Rotation*rl.Rad2deg, color)
	case geom.KindCircle:
		rl.DrawCircleV(shape.Center, shape.Radius, color)
	}
}
