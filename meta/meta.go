// meta/meta.go
package meta

// DefaultDepth is the search depth used when no difficulty is chosen.
const DefaultDepth = EasyDepth

// Difficulty tiers offered to players.
const (
	EasyDepth    = 4
	MediumDepth  = 6
	HardDepth    = 8
	InhumanDepth = 10
)

// MAX_TURNS caps self-play games that would otherwise shuffle kings forever.
const MAX_TURNS = 300

// GO_ROUTINES is the default number of root search workers.
const GO_ROUTINES = 1
