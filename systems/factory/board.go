package factory

import (
	"github.com/rgroves/fcc-chi-click-a-cat/archetypes"
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	"github.com/rgroves/fcc-chi-click-a-cat/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoard spawns the garden board entity for a loaded layout.
func CreateBoard(ecs *ecs.ECS, layout *leveldata.Board) *donburi.Entry {
	board := archetypes.Board.Spawn(ecs)
	components.Board.Set(board, &components.BoardData{
		Layout:   layout,
		Occupied: make([]bool, len(layout.Holes)),
	})
	return board
}
