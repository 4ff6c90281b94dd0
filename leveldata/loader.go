package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadBoard parses a TMX file and returns the garden board layout (hole
// positions from the Holes object group). It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadBoard(fsys fs.FS, tmxPath string) (*Board, error) {
	boardMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	board := &Board{
		Name:   tmxPath,
		Width:  boardMap.Width * boardMap.TileWidth,
		Height: boardMap.Height * boardMap.TileHeight,
	}

	for _, og := range boardMap.ObjectGroups {
		if og.Name != "Holes" {
			continue
		}
		for _, obj := range og.Objects {
			// Tiled rectangle objects anchor at the top-left corner.
			board.Holes = append(board.Holes, Hole{
				X: obj.X + obj.Width/2,
				Y: obj.Y + obj.Height/2,
			})
		}
		break
	}

	if len(board.Holes) == 0 {
		return nil, fmt.Errorf("TMX %s has no Holes object group", tmxPath)
	}

	// Stable reading order regardless of how the map editor serialized
	// the objects: left to right, top to bottom.
	sort.Slice(board.Holes, func(i, j int) bool {
		if board.Holes[i].Y != board.Holes[j].Y {
			return board.Holes[i].Y < board.Holes[j].Y
		}
		return board.Holes[i].X < board.Holes[j].X
	})
	for i := range board.Holes {
		board.Holes[i].Index = i
	}

	return board, nil
}
