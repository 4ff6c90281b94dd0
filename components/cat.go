package components

import (
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/yohamta/donburi"
)

// CatData is the lifecycle state of one cat peeking out of a hole.
type CatData struct {
	HoleIndex int
	State     cfg.CatStateID
	Timer     int // Frames left in the current state
}

var Cat = donburi.NewComponentType[CatData]()

// Pettable reports whether a click on this cat counts.
func (c *CatData) Pettable() bool {
	return c.State == cfg.CatUp
}

// Pet moves the cat into its petted linger state.
func (c *CatData) Pet() {
	c.State = cfg.CatPetted
	c.Timer = cfg.Cats.PettedDuration
}

// Step advances the lifecycle by one frame and reports whether the cat
// should despawn. A hidden cat pops up when its delay runs out; an
// un-petted cat hides when its up-time runs out; a petted cat despawns
// after its linger.
func (c *CatData) Step() (despawn bool) {
	if c.Timer > 0 {
		c.Timer--
		return false
	}
	if c.State == cfg.CatHidden {
		c.State = cfg.CatUp
		c.Timer = cfg.Cats.UpDuration
		return false
	}
	return true
}
