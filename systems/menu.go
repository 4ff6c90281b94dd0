package systems

import (
	"fmt"
	"os"

	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition
// capability. Number keys pick the session length, F toggles
// fullscreen, a click or Enter starts the game, Escape quits.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)

		for i := range cfg.Session.SecondsOptions {
			if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
				menu.SecondsIndex = i
				cfg.Session.Seconds = cfg.Session.SecondsOptions[i]
				SaveCurrentSettings()
			}
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
			SaveCurrentSettings()
		}

		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			sceneChanger.ChangeScene(createGameScene())
			return
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
	}
}

// GetOrCreateMenu returns the menu singleton, creating it on first use
// with the index matching the configured session length.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}

	entry := e.World.Entry(e.Create(cfg.Default, components.Menu))
	idx := 0
	for i, s := range cfg.Session.SecondsOptions {
		if s == cfg.Session.Seconds {
			idx = i
		}
	}
	components.Menu.Set(entry, &components.MenuData{SecondsIndex: idx})
	return components.Menu.Get(entry)
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Grass, false)

	title := cfg.C.Title
	titleFont := fonts.Title.Get()
	titleWidth := len(title) * 20
	text.Draw(screen, title, titleFont, int(width/2)-titleWidth/2, 90, cfg.White)

	sub := "A game of petting cats before they hide"
	subFont := fonts.Main.Get()
	subWidth := len(sub) * 6
	text.Draw(screen, sub, subFont, int(width/2)-subWidth/2, 120, cfg.White)

	lengthLine := fmt.Sprintf("Session length: %ds", cfg.Session.SecondsOptions[menu.SecondsIndex])
	for i, s := range cfg.Session.SecondsOptions {
		if i == 0 {
			lengthLine += "   (press"
		}
		lengthLine += fmt.Sprintf(" %d=%ds", i+1, s)
		if i == len(cfg.Session.SecondsOptions)-1 {
			lengthLine += ")"
		}
	}
	boldFont := fonts.Bold.Get()
	text.Draw(screen, lengthLine, subFont, int(width/2)-len(lengthLine)*3, 190, cfg.White)

	start := "Click or press ENTER to start"
	startWidth := len(start) * 10
	text.Draw(screen, start, boldFont, int(width/2)-startWidth/2, 240, cfg.BrightGreen)

	hint := "F: fullscreen   ESC: quit"
	text.Draw(screen, hint, fonts.Small.Get(), int(width/2)-len(hint)*3, int(height)-30, cfg.White)
}
