package tags

import "github.com/yohamta/donburi"

var (
	Cat     = donburi.NewTag().SetName("Cat")
	Board   = donburi.NewTag().SetName("Board")
	Session = donburi.NewTag().SetName("Session")
	Hud     = donburi.NewTag().SetName("Hud")
)

// Resolv tags for click hit-testing
const (
	ResolvCat = "cat"
)
