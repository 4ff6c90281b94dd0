package components

import (
	"github.com/rgroves/fcc-chi-click-a-cat/hud"
	"github.com/rgroves/fcc-chi-click-a-cat/ui"
	"github.com/yohamta/donburi"
)

// HudData bundles the display components bound to the game UI, plus the
// frame scheduler the countdown ticks on.
// This is a singleton component - only one HUD exists at a time.
type HudData struct {
	Score  *hud.ScoreTracker
	Timer  *hud.CountdownTimer
	Banner *hud.TextDisplay
	Clock  *hud.FrameScheduler
	UI     *ui.GameUI
}

var Hud = donburi.NewComponentType[HudData]()
