package scoring

import "errors"

// Table-tennis rules as played here: best of three sets, a set goes to 11
// with a two point margin, serve changes every third point until deuce.
const (
	SetWinPoints   = 11
	SetWinMargin   = 2
	MatchSetsToWin = 2

	servesPerRotation = 3
	deucePoints       = 10
)

var (
	ErrMatchFinished  = errors.New("match is already finished")
	ErrMatchUndecided = errors.New("match has not been decided yet")
	ErrSetNotFinished = errors.New("current set is not finished")
	ErrInvalidSide    = errors.New("side must be 1 or 2")
)

// Side identifies one of the two players of a match.
type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

func (s Side) Validate() error {
	if s != Side1 && s != Side2 {
		return ErrInvalidSide
	}
	return nil
}

func (s Side) other() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// SetScore is the final point score of one completed set.
type SetScore struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

// State is the full live scoring state of one match. It is a value: engine
// operations take a State and return a new one, so callers can persist or
// discard intermediate states freely. A State belongs to exactly one match
// and is never reused across matches.
type State struct {
	P1Points int `json:"p1_points"`
	P2Points int `json:"p2_points"`
	P1Sets   int `json:"p1_sets"`
	P2Sets   int `json:"p2_sets"`

	// Sets is the ordered history of completed set scores.
	Sets []SetScore `json:"sets"`

	Server Side `json:"server"`

	// SetFinished guards the set counters against double-crediting while the
	// state sits between set completion and StartNextSet.
	SetFinished bool `json:"set_finished"`
	// Finished marks the terminal state; no operation mutates it further.
	Finished bool `json:"finished"`
}

// NewState returns the state for a match before its first point. Side 1
// serves first.
func NewState() State {
	return State{Server: Side1}
}

// appendSet copies the history so the returned state does not share a
// backing array with its predecessor.
func appendSet(sets []SetScore, s SetScore) []SetScore {
	out := make([]SetScore, len(sets), len(sets)+1)
	copy(out, sets)
	return append(out, s)
}
