package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Main  FontName = "main"
	Bold  FontName = "main-bold"
	Title FontName = "main-title"
	Small FontName = "main-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	faces = map[FontName]font.Face{}
)

// Load parses ttf once per name. Re-loading a name replaces its face.
func Load(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("fonts: parse %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := faces[name]
	if !ok {
		panic(fmt.Sprintf("fonts: %s not loaded", name))
	}
	return f
}
