package factory

import (
	"fmt"

	"github.com/rgroves/fcc-chi-click-a-cat/archetypes"
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/hud"
	"github.com/rgroves/fcc-chi-click-a-cat/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHud builds the game UI, binds the display components to it, and
// spawns the HUD singleton. onStart runs when the start button is
// clicked; onTimeUp is installed as the countdown's completion callback.
// The element ids come from config and are registered by ui.NewGameUI,
// so a failed binding is a programming error and panics.
func CreateHud(ecs *ecs.ECS, seconds int, onStart, onTimeUp func()) *donburi.Entry {
	gui := ui.NewGameUI(onStart)
	clock := hud.NewFrameScheduler(cfg.C.TPS)

	score, err := hud.NewScoreTracker(gui, cfg.Hud.ScoreElementID, 0)
	if err != nil {
		panic(fmt.Sprintf("hud wiring: %v", err))
	}
	timer, err := hud.NewCountdownTimer(gui, cfg.Hud.TimeElementID, seconds, clock)
	if err != nil {
		panic(fmt.Sprintf("hud wiring: %v", err))
	}
	banner, err := hud.NewTextDisplay(gui, cfg.Hud.BannerElementID)
	if err != nil {
		panic(fmt.Sprintf("hud wiring: %v", err))
	}
	timer.SetOnComplete(onTimeUp)

	entry := archetypes.Hud.Spawn(ecs)
	components.Hud.Set(entry, &components.HudData{
		Score:  score,
		Timer:  timer,
		Banner: banner,
		Clock:  clock,
		UI:     gui,
	})
	return entry
}
