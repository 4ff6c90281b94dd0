package systems

import (
	"github.com/rgroves/fcc-chi-click-a-cat/assets"
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var catDrawOp = &ebiten.DrawImageOptions{}

// DrawBoard renders the garden: grass background and one hole per spot.
func DrawBoard(e *ecs.ECS, screen *ebiten.Image) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)

	screen.Fill(cfg.Grass)
	for _, hole := range board.Layout.Holes {
		vector.FillCircle(screen,
			float32(hole.X), float32(hole.Y),
			cfg.Board.HoleRadius,
			cfg.HoleBrown, true)
	}
}

// DrawCats renders every visible cat. Hidden cats are still underground
// and draw nothing.
func DrawCats(e *ecs.ECS, screen *ebiten.Image) {
	tags.Cat.Each(e.World, func(entry *donburi.Entry) {
		cat := components.Cat.Get(entry)
		if cat.State == cfg.CatHidden {
			return
		}

		img := assets.CatImage()
		if cat.State == cfg.CatPetted {
			img = assets.PettedCatImage()
		}

		obj := components.Object.Get(entry)
		catDrawOp.GeoM.Reset()
		catDrawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(img, catDrawOp)
	})
}
