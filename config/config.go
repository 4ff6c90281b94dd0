package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// SessionConfig contains play-session configuration values
type SessionConfig struct {
	Seconds        int   // Countdown length of one session
	SecondsOptions []int // Session lengths selectable in the settings row

	PetPoints   int // Score delta for petting a cat
	MissPenalty int // Score delta for a click that hits no cat (<= 0)

	ReadyHint   string // Banner shown before the first session
	ResultsHint string // Banner hint appended on the time-up screen
}

// CatConfig contains cat spawn and lifetime configuration
type CatConfig struct {
	// Spawn timing (frames)
	SpawnInterval    int // Frames between spawn attempts
	MinSpawnInterval int // Lower bound as the session speeds up
	SpeedupPerPet    int // Frames shaved off the interval per petted cat

	// Lifetime (frames)
	PopDelay       int // Frames a spawned cat stays hidden before popping up
	UpDuration     int // Frames a cat stays up before hiding on its own
	PettedDuration int // Frames a petted cat lingers before despawning

	MaxVisible int // Cap on simultaneously visible cats

	// Dimensions (pixels)
	Width  float64
	Height float64
}

// BoardConfig contains garden board configuration
type BoardConfig struct {
	LevelPath  string // TMX path inside the asset FS
	CellSize   int    // resolv space cell size
	HoleRadius float32
}

// HudConfig contains HUD element ids
type HudConfig struct {
	ScoreElementID  string
	TimeElementID   string
	BannerElementID string
}

// Global configuration instances
var C *Config
var Session SessionConfig
var Cats CatConfig
var Board BoardConfig
var Hud HudConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grass       = color.RGBA{R: 58, G: 110, B: 60, A: 255}
	HoleBrown   = color.RGBA{R: 62, G: 44, B: 32, A: 255}
	CatOrange   = color.RGBA{R: 230, G: 140, B: 50, A: 255}
	CatPink     = color.RGBA{R: 240, G: 170, B: 170, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}

	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Pet-a-Cat",
		TPS:    60,
	}

	Session = SessionConfig{
		Seconds:        30,
		SecondsOptions: []int{15, 30, 60},
		PetPoints:      1,
		MissPenalty:    0,
		ReadyHint:      "Click a cat to start petting!",
		ResultsHint:    "Click to play again",
	}

	Cats = CatConfig{
		SpawnInterval:    50,
		MinSpawnInterval: 20,
		SpeedupPerPet:    2,
		PopDelay:         8,
		UpDuration:       70,
		PettedDuration:   15,
		MaxVisible:       3,
		Width:            40,
		Height:           36,
	}

	Board = BoardConfig{
		LevelPath:  "levels/garden.tmx",
		CellSize:   16,
		HoleRadius: 24,
	}

	Hud = HudConfig{
		ScoreElementID:  "score",
		TimeElementID:   "time",
		BannerElementID: "banner",
	}
}
