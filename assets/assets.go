package assets

import (
	"embed"

	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed all:levels
var LevelFS embed.FS

var (
	catImage       *ebiten.Image
	pettedCatImage *ebiten.Image
)

// CatImage returns the pettable cat sprite, built once on first use.
func CatImage() *ebiten.Image {
	if catImage == nil {
		catImage = buildCat(false)
	}
	return catImage
}

// PettedCatImage returns the just-petted sprite (blushing variant).
func PettedCatImage() *ebiten.Image {
	if pettedCatImage == nil {
		pettedCatImage = buildCat(true)
	}
	return pettedCatImage
}

// buildCat draws the sprite procedurally so the repo ships no binary
// image assets: round head, two ear nubs, eyes, and an optional blush.
func buildCat(petted bool) *ebiten.Image {
	w := float32(cfg.Cats.Width)
	h := float32(cfg.Cats.Height)
	img := ebiten.NewImage(int(w), int(h))

	// Ears
	vector.FillCircle(img, w*0.28, h*0.22, w*0.13, cfg.CatOrange, true)
	vector.FillCircle(img, w*0.72, h*0.22, w*0.13, cfg.CatOrange, true)

	// Head
	vector.FillCircle(img, w*0.5, h*0.55, w*0.38, cfg.CatOrange, true)

	// Eyes
	eye := cfg.HoleBrown
	if petted {
		// Closed happy eyes read as thin bars.
		vector.FillRect(img, w*0.30, h*0.50, w*0.12, h*0.05, eye, true)
		vector.FillRect(img, w*0.58, h*0.50, w*0.12, h*0.05, eye, true)
	} else {
		vector.FillCircle(img, w*0.36, h*0.50, w*0.05, eye, true)
		vector.FillCircle(img, w*0.64, h*0.50, w*0.05, eye, true)
	}

	if petted {
		vector.FillCircle(img, w*0.26, h*0.64, w*0.08, cfg.CatPink, true)
		vector.FillCircle(img, w*0.74, h*0.64, w*0.08, cfg.CatPink, true)
	}

	return img
}
