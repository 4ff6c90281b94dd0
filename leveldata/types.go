package leveldata

// Hole is one spot on the garden board a cat can pop out of.
type Hole struct {
	Index int
	X     float64 // Center, pixels
	Y     float64
}

// Board holds the garden layout parsed from a Tiled map.
type Board struct {
	Name   string
	Width  int // Pixels
	Height int
	Holes  []Hole
}
