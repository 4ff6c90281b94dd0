package config

// SettingsConfig contains the tunables the player can change in the menu.
type SettingsConfig struct {
	DefaultSecondsIndex int  // Index into Session.SecondsOptions
	DefaultFullscreen   bool // Windowed by default
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		DefaultSecondsIndex: 1, // 30 s
		DefaultFullscreen:   false,
	}
}
