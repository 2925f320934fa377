// Package voting implements the up/down vote rules shared by posts and
// comments. A voter is in at most one of the two voter sets at any
// time; the sets are stored as a single junction row whose voice column
// is +1 (up-voter) or -1 (down-voter).
package voting

// Direction is the voice a caller casts.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

// State is the caller's current standing with a votable.
type State int

const (
	Neutral State = iota
	Upvoted
	Downvoted
)

// StateOf maps a stored voice to a state. voice 0 means no row exists.
func StateOf(voice int) State {
	switch {
	case voice > 0:
		return Upvoted
	case voice < 0:
		return Downvoted
	default:
		return Neutral
	}
}

// Change is what a vote does to storage: a rating delta plus at most
// one membership mutation on the junction table.
type Change struct {
	Delta  int
	Insert bool
	Remove bool
}

// Resolve computes the transition. Re-voting in the same direction is a
// no-op; voting against an existing vote removes it and lands on
// Neutral rather than flipping to the opposite set.
func Resolve(cur State, dir Direction) Change {
	switch {
	case cur == Neutral:
		return Change{Delta: int(dir), Insert: true}
	case cur == Upvoted && dir == Down, cur == Downvoted && dir == Up:
		return Change{Delta: int(dir), Remove: true}
	default:
		return Change{}
	}
}
