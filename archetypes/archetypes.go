package archetypes

import (
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cat = newArchetype(
		tags.Cat,
		components.Cat,
		components.Object,
	)
	Board = newArchetype(
		tags.Board,
		components.Board,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Pointer,
	)
	Hud = newArchetype(
		tags.Hud,
		components.Hud,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
