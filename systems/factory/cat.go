package factory

import (
	"github.com/rgroves/fcc-chi-click-a-cat/archetypes"
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/leveldata"
	"github.com/rgroves/fcc-chi-click-a-cat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCat spawns a hidden cat at the given hole. Its collision object
// carries the entry in Data so a click can walk back from the resolv
// space to the entity.
func CreateCat(ecs *ecs.ECS, hole leveldata.Hole) *donburi.Entry {
	cat := archetypes.Cat.Spawn(ecs)

	components.Cat.Set(cat, &components.CatData{
		HoleIndex: hole.Index,
		State:     cfg.CatHidden,
		Timer:     cfg.Cats.PopDelay,
	})

	obj := resolv.NewObject(
		hole.X-cfg.Cats.Width/2,
		hole.Y-cfg.Cats.Height/2,
		cfg.Cats.Width,
		cfg.Cats.Height,
		tags.ResolvCat,
	)
	obj.Data = cat
	components.Object.Set(cat, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return cat
}
