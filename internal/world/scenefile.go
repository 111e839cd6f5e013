package world

import (
	"fmt"
	"log"
	"os"

	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name,omitempty"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string           `yaml:"name"`
	Tags       []string         `yaml:"tags,omitempty"`
	Layer      string           `yaml:"layer,omitempty"`
	Position   [2]float32       `yaml:"position"`
	Rotation   float32          `yaml:"rotation,omitempty"` // degrees
	Scale      [2]float32       `yaml:"scale,omitempty"`
	Active     *bool            `yaml:"active,omitempty"`
	Components []map[string]any `yaml:"components,omitempty"`
	Children   []ObjectDef      `yaml:"children,omitempty"`
}

// --- Loading ---

// LoadScene reads a scene file, adds its objects to the scene and registers
// their colliders with the physics world.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	objects, err := ParseScene(data)
	if err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}

	for _, g := range objects {
		w.Spawn(g)
	}
	log.Printf("Scene: loaded %d objects from %s", len(objects), path)
	return nil
}

// ParseScene builds the root objects described by a scene file.
func ParseScene(data []byte) ([]*engine.GameObject, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return nil, err
		}
		objects = append(objects, g)
	}
	return objects, nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector2{X: def.Position[0], Y: def.Position[1]}
	g.Transform.Rotation = def.Rotation * rl.Deg2rad

	// Default scale to 1 if zero
	if def.Scale != [2]float32{} {
		g.Transform.Scale = rl.Vector2{X: def.Scale[0], Y: def.Scale[1]}
	}
	if def.Active != nil {
		g.Active = *def.Active
	}

	if def.Layer != "" {
		layer, ok := engine.ParseLayer(def.Layer)
		if !ok {
			return nil, fmt.Errorf("object %q: unknown layer %q", def.Name, def.Layer)
		}
		g.Layer = layer
	}

	for _, props := range def.Components {
		typeName, _ := engine.StringProp(props, "type")
		comp, ok := engine.CreateComponent(typeName, props)
		if !ok {
			return nil, fmt.Errorf("object %q: unknown component type %q", def.Name, typeName)
		}
		g.AddComponent(comp)
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	data, err := MarshalScene(w.Scene)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// MarshalScene encodes the root objects of scene and their hierarchies.
// Components that are not serializable are left out.
func MarshalScene(scene *engine.Scene) ([]byte, error) {
	sf := SceneFile{Name: scene.Name}
	for _, g := range scene.GameObjects {
		if g.Parent != nil || g.IsDestroyed() {
			continue
		}
		sf.Objects = append(sf.Objects, objectDef(g))
	}

	data, err := yaml.Marshal(sf)
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: [2]float32{g.Transform.Position.X, g.Transform.Position.Y},
		Rotation: g.Transform.Rotation * rl.Rad2deg,
		Scale:    [2]float32{g.Transform.Scale.X, g.Transform.Scale.Y},
	}
	if g.Layer != engine.LayerDefault {
		def.Layer = g.Layer.String()
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}

	for _, c := range g.Components() {
		if s, ok := c.(engine.Serializable); ok {
			props := s.Serialize()
			props["type"] = s.TypeName()
			def.Components = append(def.Components, props)
		}
	}
	for _, child := range g.Children {
		if !child.IsDestroyed() {
			def.Children = append(def.Children, objectDef(child))
		}
	}
	return def
}
