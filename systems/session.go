package systems

import (
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession drives the Ready -> Playing -> TimeUp state machine. The
// Playing -> TimeUp edge is taken by the countdown timer's completion
// callback (wired in factory.CreateHud); this system handles starting
// and restarting.
func UpdateSession(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	pointer := components.Pointer.Get(sessionEntry)

	switch session.State {
	case cfg.SessionReady, cfg.SessionTimeUp:
		// The start button or any click on the board begins a session.
		if session.StartRequested || pointer.JustPressed {
			startSession(e, session)
			// The starting click must not count as a miss downstream.
			pointer.JustPressed = false
		}

	case cfg.SessionPlaying:
		// Ticking and the TimeUp edge belong to the countdown timer.
	}

	session.StartRequested = false
}

func startSession(e *ecs.ECS, session *components.SessionData) {
	DespawnAllCats(e)

	session.State = cfg.SessionPlaying
	session.ClearCounters()
	session.SpawnTimer = cfg.Cats.SpawnInterval

	hudEntry, ok := components.Hud.First(e.World)
	if !ok {
		return
	}
	hudData := components.Hud.Get(hudEntry)
	hudData.Score.Reset()
	hudData.Timer.Reset()
	hudData.Timer.Start()
}

// EndSession flips a running session to the results screen. Installed as
// the countdown timer's completion callback.
func EndSession(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.State != cfg.SessionPlaying {
		return
	}
	session.State = cfg.SessionTimeUp
	DespawnAllCats(e)
}

// RequestStart queues a session start for the next UpdateSession pass.
// Called from UI callbacks so scene wiring stays out of the widget tree.
func RequestStart(e *ecs.ECS) {
	if entry, ok := components.Session.First(e.World); ok {
		components.Session.Get(entry).StartRequested = true
	}
}

// IsSessionPlaying reports whether a session countdown is active.
func IsSessionPlaying(e *ecs.ECS) bool {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return false
	}
	return components.Session.Get(entry).State == cfg.SessionPlaying
}
