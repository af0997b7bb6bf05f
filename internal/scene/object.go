package scene

import (
	"github.com/ivlev/keyframe/internal/channel"
	"github.com/yohamta/donburi"
)

// Object is a handle to one scene entity. It exposes the setter
// capabilities the engine applies values through; setters for components
// the entity lacks do nothing.
type Object struct {
	world  donburi.World
	entity donburi.Entity
}

// entry is resolved per call; adding a component moves the entity to
// another archetype. It is nil once the entity has been removed.
func (o *Object) entry() *donburi.Entry {
	if !o.world.Valid(o.entity) {
		return nil
	}
	return o.world.Entry(o.entity)
}

// Valid reports whether the object is still in its scene. Removed
// objects read as zero values and ignore every setter.
func (o *Object) Valid() bool {
	return o.world.Valid(o.entity)
}

func (o *Object) ID() string {
	if e := o.entry(); e != nil {
		return Name.Get(e).ID
	}
	return ""
}

func (o *Object) HasMaterial() bool {
	e := o.entry()
	return e != nil && e.HasComponent(Material)
}

func (o *Object) HasVisibility() bool {
	e := o.entry()
	return e != nil && e.HasComponent(Visibility)
}

func (o *Object) transform() *TransformData {
	if e := o.entry(); e != nil {
		return Transform.Get(e)
	}
	return nil
}

func (o *Object) Transform() TransformData {
	if t := o.transform(); t != nil {
		return *t
	}
	return TransformData{}
}

func (o *Object) SetTransform(t TransformData) {
	if e := o.entry(); e != nil {
		Transform.SetValue(e, t)
	}
}

// Material returns the material and whether the object has one.
func (o *Object) Material() (MaterialData, bool) {
	if !o.HasMaterial() {
		return MaterialData{}, false
	}
	return *Material.Get(o.entry()), true
}

func (o *Object) SetMaterial(m MaterialData) {
	e := o.entry()
	if e == nil {
		return
	}
	if !e.HasComponent(Material) {
		donburi.Add(e, Material, &m)
		return
	}
	Material.SetValue(e, m)
}

// Visible reports the visibility flag. Objects without one are visible.
func (o *Object) Visible() bool {
	if !o.HasVisibility() {
		return true
	}
	return Visibility.Get(o.entry()).Visible
}

func (o *Object) SetPosition(axis channel.Axis, v float64) {
	if t := o.transform(); t != nil {
		setAxis(&t.Position, axis, v)
	}
}

func (o *Object) SetRotation(axis channel.Axis, v float64) {
	if t := o.transform(); t != nil {
		setAxis(&t.Rotation, axis, v)
	}
}

func (o *Object) SetScale(axis channel.Axis, v float64) {
	if t := o.transform(); t != nil {
		setAxis(&t.Scale, axis, v)
	}
}

func (o *Object) SetMaterialParam(key channel.Key, v float64) {
	if !o.HasMaterial() {
		return
	}
	m := Material.Get(o.entry())
	switch key {
	case channel.MaterialOpacity:
		m.Opacity = v
	case channel.MaterialRoughness:
		m.Roughness = v
	case channel.MaterialMetalness:
		m.Metalness = v
	case channel.MaterialEmissive:
		m.Emissive = v
	case channel.MaterialColorR:
		m.Color.R = v
	case channel.MaterialColorG:
		m.Color.G = v
	case channel.MaterialColorB:
		m.Color.B = v
	}
}

func (o *Object) SetVisible(visible bool) {
	if !o.HasVisibility() {
		return
	}
	Visibility.Get(o.entry()).Visible = visible
}

func setAxis(v *Vec3, axis channel.Axis, value float64) {
	switch axis {
	case channel.X:
		v.X = value
	case channel.Y:
		v.Y = value
	case channel.Z:
		v.Z = value
	}
}
