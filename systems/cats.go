package systems

import (
	"math/rand"

	"github.com/rgroves/fcc-chi-click-a-cat/components"
	cfg "github.com/rgroves/fcc-chi-click-a-cat/config"
	"github.com/rgroves/fcc-chi-click-a-cat/systems/factory"
	"github.com/rgroves/fcc-chi-click-a-cat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCats advances cat lifecycles, resolves petting clicks, and
// spawns new cats while a session is playing.
func UpdateCats(e *ecs.ECS) {
	if !IsSessionPlaying(e) {
		return
	}

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	pointer := components.Pointer.Get(sessionEntry)

	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)

	stepCats(e, board)

	if pointer.JustPressed {
		resolveClick(e, session, pointer.X, pointer.Y)
	}

	spawnCats(e, session, board)
}

// stepCats ages every cat one frame and despawns the ones whose current
// state ran out.
func stepCats(e *ecs.ECS, board *components.BoardData) {
	var done []*donburi.Entry
	tags.Cat.Each(e.World, func(entry *donburi.Entry) {
		if components.Cat.Get(entry).Step() {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		despawnCat(e, board, entry)
	}
}

func resolveClick(e *ecs.ECS, session *components.SessionData, x, y float64) {
	entry, hit := catAt(e, x, y)
	if !hit {
		session.RecordMiss()
		addScore(e, cfg.Session.MissPenalty)
		return
	}

	components.Cat.Get(entry).Pet()
	session.RecordPet()
	addScore(e, cfg.Session.PetPoints)
}

func addScore(e *ecs.ECS, delta int) {
	if hudEntry, ok := components.Hud.First(e.World); ok {
		components.Hud.Get(hudEntry).Score.Add(delta)
	}
}

// catAt returns the pettable cat under the point, if any. The resolv
// space narrows the candidates to the probe's cells; ContainsPoint is
// the exact test.
func catAt(e *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCat)
	if check == nil {
		return nil, false
	}
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if !components.Object.Get(entry).ContainsPoint(x, y) {
			continue
		}
		if components.Cat.Get(entry).Pettable() {
			return entry, true
		}
	}
	return nil, false
}

func spawnCats(e *ecs.ECS, session *components.SessionData, board *components.BoardData) {
	if session.SpawnTimer > 0 {
		session.SpawnTimer--
		return
	}
	session.SpawnTimer = spawnInterval(session.Pets)

	if board.OccupiedCount() >= cfg.Cats.MaxVisible {
		return
	}
	free := board.FreeHoles()
	if len(free) == 0 {
		return
	}

	hole := board.Layout.Holes[free[rand.Intn(len(free))]]
	factory.CreateCat(e, hole)
	board.Occupied[hole.Index] = true
}

// spawnInterval shortens as the player pets more cats, down to the
// configured floor.
func spawnInterval(pets int) int {
	interval := cfg.Cats.SpawnInterval - pets*cfg.Cats.SpeedupPerPet
	if interval < cfg.Cats.MinSpawnInterval {
		interval = cfg.Cats.MinSpawnInterval
	}
	return interval
}

func despawnCat(e *ecs.ECS, board *components.BoardData, entry *donburi.Entry) {
	cat := components.Cat.Get(entry)
	if cat.HoleIndex >= 0 && cat.HoleIndex < len(board.Occupied) {
		board.Occupied[cat.HoleIndex] = false
	}

	obj := components.Object.Get(entry)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	entry.Remove()
}

// DespawnAllCats clears the board, freeing every hole. Used on session
// boundaries.
func DespawnAllCats(e *ecs.ECS) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)

	var all []*donburi.Entry
	tags.Cat.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	for _, entry := range all {
		despawnCat(e, board, entry)
	}
}
