package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps an entity's resolv collision object. The space gives
// cheap broad-phase candidates for a click; ContainsPoint is the exact
// check on top of it.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// ContainsPoint reports whether the point lies inside the object's
// rectangle.
func (o *ObjectData) ContainsPoint(x, y float64) bool {
	return x >= o.X && x < o.X+o.W && y >= o.Y && y < o.Y+o.H
}
