package systems

import (
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer polls the mouse and updates the PointerData singleton.
// Must run BEFORE UpdateSession and UpdateCats in the system order; it
// is the only system that reads the platform input APIs.
func UpdatePointer(e *ecs.ECS) {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(entry)

	x, y := ebiten.CursorPosition()
	pointer.X = float64(x)
	pointer.Y = float64(y)
	pointer.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
