package config

// SessionStateID identifies a play-session state.
type SessionStateID int

const (
	// SessionReady is the pre-game state: board visible, timer idle.
	SessionReady SessionStateID = iota
	// SessionPlaying is the active countdown.
	SessionPlaying
	// SessionTimeUp shows the results until the player restarts.
	SessionTimeUp
)

// CatStateID identifies a cat's lifecycle state.
type CatStateID int

const (
	// CatHidden is a cat below its hole, waiting to pop up.
	CatHidden CatStateID = iota
	// CatUp is a pettable cat.
	CatUp
	// CatPetted is a cat that has been petted and is despawning.
	CatPetted
)
