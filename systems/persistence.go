package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Scores are
// deliberately not persisted; only player preferences are.
type SavedSettings struct {
	SessionSeconds int  `json:"sessionSeconds"`
	Fullscreen     bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pet-a-cat",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error
// means no settings were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live configuration to disk.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SessionSeconds: cfg.Session.Seconds,
		Fullscreen:     ebiten.IsFullscreen(),
	})
}

// ApplySavedSettings applies loaded settings at startup, before any
// scene exists. A nil saved falls back to the configured defaults.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		cfg.Session.Seconds = cfg.Session.SecondsOptions[cfg.Settings.DefaultSecondsIndex]
		ebiten.SetFullscreen(cfg.Settings.DefaultFullscreen)
		return
	}

	if saved.SessionSeconds > 0 {
		cfg.Session.Seconds = saved.SessionSeconds
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
