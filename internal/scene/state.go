package scene

// MaterialState is the serialisable form of a material.
// Color is a clamped "#rrggbb" string.
type MaterialState struct {
	Color     string  `json:"color"`
	Opacity   float64 `json:"opacity"`
	Roughness float64 `json:"roughness"`
	Metalness float64 `json:"metalness"`
	Emissive  float64 `json:"emissive"`
}

// State is a point-in-time snapshot of an object.
type State struct {
	ID       string         `json:"id"`
	Position Vec3           `json:"position"`
	Rotation Vec3           `json:"rotation"`
	Scale    Vec3           `json:"scale"`
	Material *MaterialState `json:"material,omitempty"`
	Visible  bool           `json:"visible"`
}

func (o *Object) State() State {
	t := o.Transform()
	st := State{
		ID:       o.ID(),
		Position: t.Position,
		Rotation: t.Rotation,
		Scale:    t.Scale,
		Visible:  o.Visible(),
	}
	if m, ok := o.Material(); ok {
		st.Material = &MaterialState{
			Color:     m.Color.Clamped().Hex(),
			Opacity:   m.Opacity,
			Roughness: m.Roughness,
			Metalness: m.Metalness,
			Emissive:  m.Emissive,
		}
	}
	return st
}
