// Package scene holds the host-side target objects that animations drive.
// Objects live in a donburi world; each one carries a transform and,
// optionally, a material and a visibility flag.
package scene

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
)

// Features selects the optional components of a spawned object.
type Features struct {
	Material   bool
	Visibility bool
}

type Scene struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

func New() *Scene {
	return &Scene{
		world:    donburi.NewWorld(),
		entities: make(map[string]donburi.Entity),
	}
}

// Spawn creates an object with default component values.
// Object ids are unique within a scene.
func (s *Scene) Spawn(id string, f Features) (*Object, error) {
	if id == "" {
		return nil, fmt.Errorf("object id is empty")
	}
	if _, exists := s.entities[id]; exists {
		return nil, fmt.Errorf("object %q already exists", id)
	}

	cs := []donburi.IComponentType{Name, Transform}
	if f.Material {
		cs = append(cs, Material)
	}
	if f.Visibility {
		cs = append(cs, Visibility)
	}

	entity := s.world.Create(cs...)
	entry := s.world.Entry(entity)
	Name.SetValue(entry, NameData{ID: id})
	Transform.SetValue(entry, DefaultTransform())
	if f.Material {
		Material.SetValue(entry, DefaultMaterial())
	}
	if f.Visibility {
		Visibility.SetValue(entry, VisibilityData{Visible: true})
	}

	s.entities[id] = entity
	return &Object{world: s.world, entity: entity}, nil
}

// Object returns the object with the given id.
func (s *Scene) Object(id string) (*Object, bool) {
	entity, ok := s.entities[id]
	if !ok || !s.world.Valid(entity) {
		return nil, false
	}
	return &Object{world: s.world, entity: entity}, true
}

// Remove destroys the object. It reports whether the object existed.
func (s *Scene) Remove(id string) bool {
	entity, ok := s.entities[id]
	if !ok {
		return false
	}
	s.world.Remove(entity)
	delete(s.entities, id)
	return true
}

func (s *Scene) Len() int {
	return len(s.entities)
}

// IDs returns the object ids in ascending order.
func (s *Scene) IDs() []string {
	ids := make([]string, 0, len(s.entities))
	for id := range s.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Each calls fn for every object, ordered by id.
func (s *Scene) Each(fn func(*Object)) {
	for _, id := range s.IDs() {
		if o, ok := s.Object(id); ok {
			fn(o)
		}
	}
}

// States returns a snapshot of every object, ordered by id.
func (s *Scene) States() []State {
	states := make([]State, 0, len(s.entities))
	s.Each(func(o *Object) {
		states = append(states, o.State())
	})
	return states
}
