// Stress test timing physics ticks as the number of dynamic bodies grows
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	ticks := flag.Int("ticks", 120, "ticks timed per body count")
	continuous := flag.Bool("continuous", false, "enable continuous collisions on every body")
	flag.Parse()

	// Test various object counts
	testCounts := []int{10, 50, 100, 200, 400, 800}

	for _, count := range testCounts {
		testStep(count, *ticks, *continuous)
	}
}

func testStep(count, ticks int, continuous bool) {
	cfg := physics.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(42, 0)) // Consistent results
	world := physics.NewWorld(cfg)
	rng := rand.New(rand.NewPCG(42, 1))

	// Arena width scales with count to keep density reasonable
	width := float32(20) + float32(count)/4

	floor := engine.NewGameObject("Floor")
	floor.Layer = engine.LayerGround
	floor.Transform.Position = rl.Vector2{X: 0, Y: 10}
	floor.AddComponent(components.NewBoxCollider(rl.Vector2{X: width + 2, Y: 1}, false))
	world.RegisterObject(floor)

	for i := range count {
		body := engine.NewGameObject(fmt.Sprintf("Body_%d", i))
		body.Transform.Position = rl.Vector2{
			X: rng.Float32()*width - width/2,
			Y: -rng.Float32() * 20,
		}

		rb := components.NewRigidbody(components.KinematicsDynamic)
		rb.Velocity = rl.Vector2{X: rng.Float32()*10 - 5}
		rb.Elasticity = rng.Float32() * 0.5
		rb.ContinuousCollisions = continuous
		body.AddComponent(rb)

		if i%2 == 0 {
			body.AddComponent(components.NewBoxCollider(rl.Vector2{X: 0.5 + rng.Float32()*0.5, Y: 0.5 + rng.Float32()*0.5}, false))
		} else {
			body.AddComponent(components.NewCircleCollider(0.25+rng.Float32()*0.25, false))
		}
		body.Start()
		world.RegisterObject(body)
	}

	// Warm up
	world.Step(1.0 / 60)

	start := time.Now()
	for range ticks {
		world.Step(1.0 / 60)
	}
	perTick := time.Since(start) / time.Duration(ticks)

	fmt.Printf("%4d bodies: %10v per tick | %4d contacts on the last tick\n",
		count, perTick.Round(time.Microsecond), len(world.Contacts()))
}
