package main

import (
	"image"
	"log"

	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/fonts"
	"github.com/rgroves/fcc-chi-click-a-cat/scenes"
	"github.com/rgroves/fcc-chi-click-a-cat/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.Load(fonts.Main, goregular.TTF, 12)
	fonts.Load(fonts.Bold, goregular.TTF, 18)
	fonts.Load(fonts.Title, goregular.TTF, 36)
	fonts.Load(fonts.Small, goregular.TTF, 10)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(cfg.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettings(saved)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
