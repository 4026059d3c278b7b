package scoring

// AwardPoint credits one point to side and returns the resulting state.
// After the increment the server is reassigned (every third total point, or
// every point once both sides are at deuce) and set/match completion is
// evaluated. Points on a finished match are rejected with ErrMatchFinished.
func AwardPoint(s State, side Side) (State, error) {
	if err := side.Validate(); err != nil {
		return s, err
	}
	if s.Finished {
		return s, ErrMatchFinished
	}

	if side == Side1 {
		s.P1Points++
	} else {
		s.P2Points++
	}

	total := s.P1Points + s.P2Points
	deuce := s.P1Points >= deucePoints && s.P2Points >= deucePoints
	if deuce || total%servesPerRotation == 0 {
		s.Server = s.Server.other()
	}

	return settleSet(s), nil
}

// settleSet credits the set (and possibly the match) when the set-win
// predicate holds. The SetFinished guard makes repeated evaluation a no-op,
// so the set counters move exactly once per set.
func settleSet(s State) State {
	if s.SetFinished {
		return s
	}
	p1, p2 := s.P1Points, s.P2Points
	if (p1 < SetWinPoints && p2 < SetWinPoints) || abs(p1-p2) < SetWinMargin {
		return s
	}

	s.SetFinished = true
	if p1 > p2 {
		s.P1Sets++
	} else {
		s.P2Sets++
	}
	s.Sets = appendSet(s.Sets, SetScore{P1: p1, P2: p2})

	if s.P1Sets >= MatchSetsToWin || s.P2Sets >= MatchSetsToWin {
		s.Finished = true
	}
	return s
}

// UndoPoint takes one point back from side, flooring at zero. The server is
// then recomputed deterministically from the resulting total:
//
//	rotation = total / 3; server = 1 if rotation is even, else 2
//
// The formula is applied uniformly, deuce included, so an undo inside a
// deuce sequence can land on a different server than forward play produced.
func UndoPoint(s State, side Side) (State, error) {
	if err := side.Validate(); err != nil {
		return s, err
	}
	if s.Finished {
		return s, ErrMatchFinished
	}

	if side == Side1 && s.P1Points > 0 {
		s.P1Points--
	}
	if side == Side2 && s.P2Points > 0 {
		s.P2Points--
	}

	s.Server = ServerForTotal(s.P1Points + s.P2Points)
	return s, nil
}

// ServerForTotal is the deterministic serve assignment used after an undo.
func ServerForTotal(totalPoints int) Side {
	if (totalPoints/servesPerRotation)%2 == 0 {
		return Side1
	}
	return Side2
}

// StartNextSet opens the following set: both point counters reset, the
// completion guard clears and the starting server flips. It is only valid
// between a completed set and the next point, on a match that is not over.
func StartNextSet(s State) (State, error) {
	if s.Finished {
		return s, ErrMatchFinished
	}
	if !s.SetFinished {
		return s, ErrSetNotFinished
	}

	s.P1Points = 0
	s.P2Points = 0
	s.SetFinished = false
	s.Server = s.Server.other()
	return s, nil
}

// FinishMatch freezes a completed match and returns the set history that
// becomes the match's permanent record (the live point state is discarded).
func FinishMatch(s State) ([]SetScore, error) {
	if !s.Finished {
		return nil, ErrMatchUndecided
	}
	return s.Sets, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
