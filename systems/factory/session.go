package factory

import (
	"github.com/rgroves/fcc-chi-click-a-cat/archetypes"
	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton in the Ready state.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.Set(session, &components.SessionData{
		State: cfg.SessionReady,
	})
	components.Pointer.Set(session, &components.PointerData{})
	return session
}
