package engine

import "testing"

type mockSerializable struct {
	BaseComponent
	Speed  float32
	Sticky bool
	Label  string
}

func (m *mockSerializable) TypeName() string { return "Mock" }

func (m *mockSerializable) Serialize() map[string]any {
	return map[string]any{"type": "Mock", "speed": m.Speed, "sticky": m.Sticky, "label": m.Label}
}

func (m *mockSerializable) Deserialize(data map[string]any) {
	if v, ok := Float32Prop(data, "speed"); ok {
		m.Speed = v
	}
	if v, ok := BoolProp(data, "sticky"); ok {
		m.Sticky = v
	}
	if v, ok := StringProp(data, "label"); ok {
		m.Label = v
	}
}

func TestRegisterAndCreateComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("Mock", func() Serializable { return &mockSerializable{} })

	c, ok := CreateComponent("Mock", map[string]any{"speed": 3, "sticky": true, "label": "x"})
	if !ok {
		t.Fatal("CreateComponent should find registered component")
	}
	mock := c.(*mockSerializable)
	if mock.Speed != 3 || !mock.Sticky || mock.Label != "x" {
		t.Errorf("Deserialize not applied: %+v", mock)
	}

	if _, ok := CreateComponent("Missing", nil); ok {
		t.Error("CreateComponent should fail for unknown names")
	}

	names := RegisteredComponents()
	if len(names) != 1 || names[0] != "Mock" {
		t.Errorf("Expected [Mock], got %v", names)
	}
}

func TestRegisterComponentDuplicatePanics(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("Mock", func() Serializable { return &mockSerializable{} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	RegisterComponent("Mock", func() Serializable { return &mockSerializable{} })
}

func TestFloat32PropAcceptsYAMLAndJSONNumbers(t *testing.T) {
	data := map[string]any{"a": 1.5, "b": 2, "c": int64(4), "d": "nope"}
	if v, ok := Float32Prop(data, "a"); !ok || v != 1.5 {
		t.Errorf("float64 not read: %v %v", v, ok)
	}
	if v, ok := Float32Prop(data, "b"); !ok || v != 2 {
		t.Errorf("int not read: %v %v", v, ok)
	}
	if v, ok := Float32Prop(data, "c"); !ok || v != 4 {
		t.Errorf("int64 not read: %v %v", v, ok)
	}
	if _, ok := Float32Prop(data, "d"); ok {
		t.Error("string should not read as float")
	}
}
