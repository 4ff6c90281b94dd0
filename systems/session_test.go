package systems

import (
	"testing"

	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/leveldata"
	"github.com/rgroves/fcc-chi-click-a-cat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless ECS with a space, a two-hole board,
// and a session in the Ready state. No HUD and no renderers: the game
// systems are written to run without them.
func newTestWorld(t *testing.T) (*ecs.ECS, *components.SessionData, *components.PointerData, *components.BoardData) {
	t.Helper()

	layout := &leveldata.Board{
		Name:   "test",
		Width:  320,
		Height: 320,
		Holes: []leveldata.Hole{
			{Index: 0, X: 80, Y: 160},
			{Index: 1, X: 240, Y: 160},
		},
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, layout.Width, layout.Height, cfg.Board.CellSize, cfg.Board.CellSize)
	boardEntry := factory.CreateBoard(e, layout)
	sessionEntry := factory.CreateSession(e)

	return e,
		components.Session.Get(sessionEntry),
		components.Pointer.Get(sessionEntry),
		components.Board.Get(boardEntry)
}

func TestSessionStartsOnClick(t *testing.T) {
	e, session, pointer, _ := newTestWorld(t)

	pointer.JustPressed = true
	UpdateSession(e)

	if session.State != cfg.SessionPlaying {
		t.Fatalf("state = %v after click, want SessionPlaying", session.State)
	}
	if pointer.JustPressed {
		t.Error("starting click was not consumed; it would count as a miss")
	}
	if session.SpawnTimer != cfg.Cats.SpawnInterval {
		t.Errorf("SpawnTimer = %d, want %d", session.SpawnTimer, cfg.Cats.SpawnInterval)
	}
}

func TestSessionStartsOnRequest(t *testing.T) {
	e, session, _, _ := newTestWorld(t)

	RequestStart(e)
	UpdateSession(e)

	if session.State != cfg.SessionPlaying {
		t.Fatalf("state = %v after RequestStart, want SessionPlaying", session.State)
	}
	if session.StartRequested {
		t.Error("StartRequested not consumed")
	}
}

func TestEndSessionOnlyFromPlaying(t *testing.T) {
	e, session, _, _ := newTestWorld(t)

	EndSession(e)
	if session.State != cfg.SessionReady {
		t.Fatalf("EndSession moved a Ready session to %v", session.State)
	}

	session.State = cfg.SessionPlaying
	EndSession(e)
	if session.State != cfg.SessionTimeUp {
		t.Fatalf("state = %v after EndSession, want SessionTimeUp", session.State)
	}
}

func TestSessionRestartAfterTimeUp(t *testing.T) {
	e, session, pointer, _ := newTestWorld(t)

	session.State = cfg.SessionTimeUp
	session.Pets = 9
	session.Misses = 3

	pointer.JustPressed = true
	UpdateSession(e)

	if session.State != cfg.SessionPlaying {
		t.Fatalf("state = %v, want SessionPlaying", session.State)
	}
	if session.Pets != 0 || session.Misses != 0 {
		t.Errorf("counters not cleared: pets=%d misses=%d", session.Pets, session.Misses)
	}
}

func TestEndSessionClearsBoard(t *testing.T) {
	e, session, _, board := newTestWorld(t)
	session.State = cfg.SessionPlaying

	factory.CreateCat(e, board.Layout.Holes[0])
	board.Occupied[0] = true
	factory.CreateCat(e, board.Layout.Holes[1])
	board.Occupied[1] = true

	EndSession(e)

	if n := board.OccupiedCount(); n != 0 {
		t.Errorf("OccupiedCount() = %d after EndSession, want 0", n)
	}
	if _, ok := components.Cat.First(e.World); ok {
		t.Error("cat entities survived EndSession")
	}
}
