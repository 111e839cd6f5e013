package engine

import (
	"fmt"
	"sort"
)

// Serializable is implemented by components that can be saved to and loaded
// from scene files.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates a zero-configured component ready for Deserialize.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Registering the same
// name twice is a programming error.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent builds a registered component and loads data into it.
func CreateComponent(name string, data map[string]any) (Serializable, bool) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, false
	}
	c := factory()
	c.Deserialize(data)
	return c, true
}

// RegisteredComponents returns the sorted names of every registered component.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float32Prop reads a numeric property decoded from JSON or YAML.
func Float32Prop(data map[string]any, key string) (float32, bool) {
	switch v := data[key].(type) {
	case float64:
		return float32(v), true
	case float32:
		return v, true
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	}
	return 0, false
}

// BoolProp reads a boolean property.
func BoolProp(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}

// StringProp reads a string property.
func StringProp(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}
