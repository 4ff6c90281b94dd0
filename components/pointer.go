package components

import "github.com/yohamta/donburi"

// PointerData stores this frame's cursor state. UpdatePointer is the
// only system that touches the platform input APIs; everything else
// reads this component, which keeps the game systems testable headless.
type PointerData struct {
	X, Y        float64
	JustPressed bool // Left button went down this frame
}

var Pointer = donburi.NewComponentType[PointerData]()
