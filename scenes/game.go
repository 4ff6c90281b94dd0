package scenes

import (
	"image/color"
	"sync"

	"github.com/rgroves/fcc-chi-click-a-cat/assets"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/leveldata"
	"github.com/rgroves/fcc-chi-click-a-cat/systems"
	"github.com/rgroves/fcc-chi-click-a-cat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs the garden: the board, the cats, and the HUD with its
// score tracker and countdown timer.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new game scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	// Escape backs out to the title screen from any session state.
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	board, err := leveldata.LoadBoard(assets.LevelFS, cfg.Board.LevelPath)
	if err != nil {
		panic("failed to load board: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateCats)
	e.AddSystem(systems.UpdateHud)

	e.AddRenderer(cfg.Default, systems.DrawBoard)
	e.AddRenderer(cfg.Default, systems.DrawCats)
	e.AddRenderer(cfg.Default, systems.DrawHud)

	gs.ecs = e

	// The space for click hit-testing, sized to the board.
	factory.CreateSpace(e, board.Width, board.Height, cfg.Board.CellSize, cfg.Board.CellSize)
	factory.CreateBoard(e, board)
	factory.CreateSession(e)
	factory.CreateHud(e, cfg.Session.Seconds,
		func() { systems.RequestStart(e) },
		func() { systems.EndSession(e) },
	)
}
