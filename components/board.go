package components

import (
	"github.com/rgroves/fcc-chi-click-a-cat/leveldata"
	"github.com/yohamta/donburi"
)

// BoardData holds the loaded garden layout and which holes currently
// have a cat in them.
// This is a singleton component - only one board exists at a time.
type BoardData struct {
	Layout   *leveldata.Board
	Occupied []bool // Indexed by hole index
}

var Board = donburi.NewComponentType[BoardData]()

// FreeHoles returns the indices of holes with no cat.
func (b *BoardData) FreeHoles() []int {
	free := make([]int, 0, len(b.Occupied))
	for i, taken := range b.Occupied {
		if !taken {
			free = append(free, i)
		}
	}
	return free
}

// OccupiedCount returns how many holes have a cat.
func (b *BoardData) OccupiedCount() int {
	n := 0
	for _, taken := range b.Occupied {
		if taken {
			n++
		}
	}
	return n
}
