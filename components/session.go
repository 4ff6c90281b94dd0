package components

import (
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/yohamta/donburi"
)

// SessionData stores the current play-session state.
// This is a singleton component - only one session exists at a time.
type SessionData struct {
	State cfg.SessionStateID

	Pets   int // Cats petted this session
	Misses int // Clicks that hit no cat

	SpawnTimer int // Frames until the next spawn attempt

	// StartRequested is set by the HUD start button or a board click
	// while idle, and consumed by UpdateSession on the next frame.
	StartRequested bool
}

var Session = donburi.NewComponentType[SessionData]()

// RecordPet counts one petted cat.
func (s *SessionData) RecordPet() {
	s.Pets++
}

// RecordMiss counts one click that hit grass instead of cat.
func (s *SessionData) RecordMiss() {
	s.Misses++
}

// Accuracy returns petted clicks as a percentage of all clicks, or 100
// when the player never clicked.
func (s *SessionData) Accuracy() int {
	total := s.Pets + s.Misses
	if total == 0 {
		return 100
	}
	return s.Pets * 100 / total
}

// ClearCounters resets the per-session counters for a fresh run.
func (s *SessionData) ClearCounters() {
	s.Pets = 0
	s.Misses = 0
	s.SpawnTimer = 0
}
