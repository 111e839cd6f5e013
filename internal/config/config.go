// Package config loads physics settings from YAML and applies them to a world.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Vec2 is a YAML friendly vector written as [x, y].
type Vec2 [2]float32

func (v Vec2) Vector2() rl.Vector2 {
	return rl.Vector2{X: v[0], Y: v[1]}
}

// Layers lists changes to the all-enabled layer matrix, applied in order:
// isolated layers first, then disabled pairs, then enabled pairs.
type Layers struct {
	Isolate []string    `yaml:"isolate"`
	Disable [][2]string `yaml:"disable"`
	Enable  [][2]string `yaml:"enable"`
}

type Physics struct {
	// Timestep is the fixed simulation step in seconds.
	Timestep       float32 `yaml:"timestep"`
	MaxSubsteps    int     `yaml:"maxSubsteps"`
	Gravity        Vec2    `yaml:"gravity"`
	CastStep       float32 `yaml:"castStep"`
	FrictionCutoff float32 `yaml:"frictionCutoff"`
	Layers         Layers  `yaml:"layers"`
}

func Default() Physics {
	return Physics{
		Timestep:       1.0 / 60,
		MaxSubsteps:    5,
		Gravity:        Vec2{physics.DefaultGravity.X, physics.DefaultGravity.Y},
		CastStep:       physics.DefaultCastStep,
		FrictionCutoff: physics.DefaultFrictionCutoff,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Physics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Physics{}, fmt.Errorf("read physics config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Physics{}, fmt.Errorf("physics config %s: %w", path, err)
	}
	log.Printf("Physics: loaded config from %s (timestep %.4fs, gravity %.1f,%.1f)", path, cfg.Timestep, cfg.Gravity[0], cfg.Gravity[1])
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Physics, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Physics{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Physics{}, err
	}
	return cfg, nil
}

var (
	ErrTimestep     = errors.New("timestep must be positive")
	ErrSubsteps     = errors.New("maxSubsteps must be at least 1")
	ErrCastStep     = errors.New("castStep must be positive")
	ErrFriction     = errors.New("frictionCutoff must not be negative")
	ErrUnknownLayer = errors.New("unknown layer")
)

func (p Physics) Validate() error {
	var errs []error
	if p.Timestep <= 0 {
		errs = append(errs, ErrTimestep)
	}
	if p.MaxSubsteps < 1 {
		errs = append(errs, ErrSubsteps)
	}
	if p.CastStep <= 0 {
		errs = append(errs, ErrCastStep)
	}
	if p.FrictionCutoff < 0 {
		errs = append(errs, ErrFriction)
	}
	for _, name := range p.Layers.Isolate {
		if _, ok := engine.ParseLayer(name); !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownLayer, name))
		}
	}
	for _, pairs := range [][][2]string{p.Layers.Disable, p.Layers.Enable} {
		for _, pair := range pairs {
			for _, name := range pair {
				if _, ok := engine.ParseLayer(name); !ok {
					errs = append(errs, fmt.Errorf("%w %q", ErrUnknownLayer, name))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Apply configures matrix from the layer rules. The config must be valid.
func (p Physics) Apply(matrix *physics.LayerMatrix) {
	for _, name := range p.Layers.Isolate {
		layer, _ := engine.ParseLayer(name)
		matrix.DisableAll(layer)
	}
	for _, pair := range p.Layers.Disable {
		a, _ := engine.ParseLayer(pair[0])
		b, _ := engine.ParseLayer(pair[1])
		matrix.Disable(a, b)
	}
	for _, pair := range p.Layers.Enable {
		a, _ := engine.ParseLayer(pair[0])
		b, _ := engine.ParseLayer(pair[1])
		matrix.Enable(a, b)
	}
}

// WorldConfig builds the physics world settings, with a fresh layer matrix.
func (p Physics) WorldConfig() physics.Config {
	matrix := physics.NewLayerMatrix()
	p.Apply(matrix)
	return physics.Config{
		Gravity:        p.Gravity.Vector2(),
		Layers:         matrix,
		CastStep:       p.CastStep,
		FrictionCutoff: p.FrictionCutoff,
	}
}
