package systems

import (
	"fmt"

	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHud pumps the frame scheduler the countdown ticks on, keeps the
// banner and start button in step with the session state, and advances
// the widget tree.
func UpdateHud(e *ecs.ECS) {
	hudEntry, ok := components.Hud.First(e.World)
	if !ok {
		return
	}
	hudData := components.Hud.Get(hudEntry)

	hudData.Clock.Tick()

	if sessionEntry, ok := components.Session.First(e.World); ok {
		session := components.Session.Get(sessionEntry)
		switch session.State {
		case cfg.SessionReady:
			hudData.Banner.SetText(cfg.Session.ReadyHint)
			hudData.UI.SetStartButton("Start", true)
		case cfg.SessionPlaying:
			hudData.Banner.SetText("")
			hudData.UI.SetStartButton("Start", false)
		case cfg.SessionTimeUp:
			hudData.Banner.SetText(resultsText(session))
			hudData.UI.SetStartButton("Play Again", true)
		}
	}

	hudData.UI.Update()
}

func resultsText(session *components.SessionData) string {
	noun := "cats"
	if session.Pets == 1 {
		noun = "cat"
	}
	return fmt.Sprintf("Time's up! You petted %d %s (%d%% accuracy)\n%s",
		session.Pets, noun, session.Accuracy(), cfg.Session.ResultsHint)
}

// DrawHud renders the widget tree over the garden, dimming the board on
// the results screen.
func DrawHud(e *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.Hud.First(e.World)
	if !ok {
		return
	}

	if sessionEntry, ok := components.Session.First(e.World); ok {
		if components.Session.Get(sessionEntry).State == cfg.SessionTimeUp {
			vector.FillRect(screen, 0, 0,
				float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
				cfg.BlackOverlay, false)
		}
	}

	components.Hud.Get(hudEntry).UI.Draw(screen)
}
