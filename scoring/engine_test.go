package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// award credits n points to side, failing the test on any error.
func award(t *testing.T, s State, side Side, n int) State {
	t.Helper()
	for i := 0; i < n; i++ {
		var err error
		s, err = AwardPoint(s, side)
		require.NoError(t, err)
	}
	return s
}

// reach10All brings a fresh set to 10-10 without ever finishing it.
func reach10All(t *testing.T, s State) State {
	t.Helper()
	for i := 0; i < 10; i++ {
		s = award(t, s, Side1, 1)
		s = award(t, s, Side2, 1)
	}
	return s
}

func TestSetCompletionPredicate(t *testing.T) {
	testCases := []struct {
		name        string
		p1, p2      int
		setFinished bool
	}{
		{name: "10-10 is not a set", p1: 10, p2: 10, setFinished: false},
		{name: "11-10 lacks the margin", p1: 11, p2: 10, setFinished: false},
		{name: "11-9 wins the set", p1: 11, p2: 9, setFinished: true},
		{name: "12-10 wins after deuce", p1: 12, p2: 10, setFinished: true},
		{name: "11-0 wins the set", p1: 11, p2: 0, setFinished: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{P1Points: tc.p1, P2Points: tc.p2, Server: Side1}
			s = settleSet(s)
			assert.Equal(t, tc.setFinished, s.SetFinished)
			if tc.setFinished {
				assert.Equal(t, 1, s.P1Sets)
				require.Len(t, s.Sets, 1)
				assert.Equal(t, SetScore{P1: tc.p1, P2: tc.p2}, s.Sets[0])
			} else {
				assert.Zero(t, s.P1Sets)
				assert.Empty(t, s.Sets)
			}
		})
	}
}

func TestServeRotationElevenZero(t *testing.T) {
	// For a set played to 11-0 the server changes exactly at total points
	// 3, 6 and 9, matching the floor(total/3)%2 formula throughout.
	s := NewState()
	expected := []Side{1, 1, 2, 2, 2, 1, 1, 1, 2, 2, 2}

	for i := 0; i < 11; i++ {
		var err error
		s, err = AwardPoint(s, Side1)
		require.NoError(t, err)
		assert.Equalf(t, expected[i], s.Server, "server after point %d", i+1)
		assert.Equal(t, ServerForTotal(i+1), s.Server)
	}
	assert.True(t, s.SetFinished)
}

func TestDeuceServeAlternatesEveryPoint(t *testing.T) {
	s := reach10All(t, NewState())

	before := s.Server
	s = award(t, s, Side1, 1) // 11-10, both sides >= 10
	assert.Equal(t, before.other(), s.Server)
	assert.False(t, s.SetFinished, "11-10 must not end the set")

	s = award(t, s, Side2, 1) // 11-11
	assert.Equal(t, before, s.Server)

	s = award(t, s, Side1, 1) // 12-11
	s = award(t, s, Side1, 1) // 13-11 ends the set
	assert.True(t, s.SetFinished)
	require.Len(t, s.Sets, 1)
	assert.Equal(t, SetScore{P1: 13, P2: 11}, s.Sets[0])
}

func TestSetCreditedExactlyOnce(t *testing.T) {
	s := award(t, NewState(), Side1, 11)
	require.True(t, s.SetFinished)
	require.Equal(t, 1, s.P1Sets)

	// Points landed between set completion and StartNextSet must not credit
	// the set again.
	s = award(t, s, Side2, 1)
	assert.Equal(t, 1, s.P1Sets)
	assert.Zero(t, s.P2Sets)
	assert.Len(t, s.Sets, 1)
}

func TestBestOfThreeCompletion(t *testing.T) {
	s := award(t, NewState(), Side1, 11)
	require.Equal(t, 1, s.P1Sets)
	require.False(t, s.Finished)

	var err error
	s, err = StartNextSet(s)
	require.NoError(t, err)

	s = award(t, s, Side1, 11)
	assert.Equal(t, 2, s.P1Sets)
	assert.True(t, s.Finished)
	assert.Len(t, s.Sets, 2)

	_, err = AwardPoint(s, Side2)
	assert.ErrorIs(t, err, ErrMatchFinished)
	_, err = UndoPoint(s, Side1)
	assert.ErrorIs(t, err, ErrMatchFinished)
	_, err = StartNextSet(s)
	assert.ErrorIs(t, err, ErrMatchFinished)
}

func TestFinishedMatchSetCounts(t *testing.T) {
	// A finished match always totals 2 or 3 sets, and the side with more
	// sets is the one that reached 2.
	testCases := []struct {
		name     string
		setsFor  []Side
		p1, p2   int
		totalSet int
	}{
		{name: "straight sets", setsFor: []Side{Side1, Side1}, p1: 2, p2: 0, totalSet: 2},
		{name: "comeback in three", setsFor: []Side{Side1, Side2, Side2}, p1: 1, p2: 2, totalSet: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			for i, winner := range tc.setsFor {
				if i > 0 {
					var err error
					s, err = StartNextSet(s)
					require.NoError(t, err)
				}
				s = award(t, s, winner, 11)
			}
			assert.True(t, s.Finished)
			assert.Equal(t, tc.p1, s.P1Sets)
			assert.Equal(t, tc.p2, s.P2Sets)
			assert.Equal(t, tc.totalSet, s.P1Sets+s.P2Sets)
		})
	}
}

func TestUndoPoint(t *testing.T) {
	t.Run("floors at zero", func(t *testing.T) {
		s, err := UndoPoint(NewState(), Side1)
		require.NoError(t, err)
		assert.Zero(t, s.P1Points)
		assert.Equal(t, Side1, s.Server)
	})

	t.Run("recomputes server from totals", func(t *testing.T) {
		s := award(t, NewState(), Side1, 5)
		s = award(t, s, Side2, 4)

		s, err := UndoPoint(s, Side1)
		require.NoError(t, err)
		assert.Equal(t, 4, s.P1Points)
		assert.Equal(t, ServerForTotal(8), s.Server)
	})

	t.Run("undo then reapply reproduces totals and server", func(t *testing.T) {
		s := award(t, NewState(), Side1, 7)
		s = award(t, s, Side2, 5)
		want := s

		var err error
		s, err = UndoPoint(s, Side2)
		require.NoError(t, err)
		s, err = AwardPoint(s, Side2)
		require.NoError(t, err)

		assert.Equal(t, want.P1Points, s.P1Points)
		assert.Equal(t, want.P2Points, s.P2Points)
		assert.Equal(t, want.Server, s.Server)
	})

	t.Run("uniform formula holds in the deuce range", func(t *testing.T) {
		// Undo never replays deuce toggles; it applies floor(total/3)%2
		// regardless. At 10-10 (total 20) that yields server 1.
		s := reach10All(t, NewState())
		s = award(t, s, Side1, 1) // 11-10

		s, err := UndoPoint(s, Side1)
		require.NoError(t, err)
		assert.Equal(t, 10, s.P1Points)
		assert.Equal(t, 10, s.P2Points)
		assert.Equal(t, Side1, s.Server)
		assert.Equal(t, ServerForTotal(20), s.Server)
	})

	t.Run("rejects invalid side", func(t *testing.T) {
		_, err := UndoPoint(NewState(), Side(3))
		assert.ErrorIs(t, err, ErrInvalidSide)
	})
}

func TestServerForTotal(t *testing.T) {
	testCases := []struct {
		total  int
		server Side
	}{
		{0, Side1}, {1, Side1}, {2, Side1},
		{3, Side2}, {4, Side2}, {5, Side2},
		{6, Side1}, {8, Side1}, {9, Side2},
		{20, Side1}, {21, Side2},
	}
	for _, tc := range testCases {
		assert.Equalf(t, tc.server, ServerForTotal(tc.total), "total %d", tc.total)
	}
}

func TestStartNextSet(t *testing.T) {
	t.Run("rejected mid set", func(t *testing.T) {
		s := award(t, NewState(), Side1, 5)
		_, err := StartNextSet(s)
		assert.ErrorIs(t, err, ErrSetNotFinished)
	})

	t.Run("resets points and toggles server", func(t *testing.T) {
		s := award(t, NewState(), Side2, 11)
		require.True(t, s.SetFinished)
		serverBefore := s.Server

		next, err := StartNextSet(s)
		require.NoError(t, err)
		assert.Zero(t, next.P1Points)
		assert.Zero(t, next.P2Points)
		assert.False(t, next.SetFinished)
		assert.Equal(t, serverBefore.other(), next.Server)
		assert.Equal(t, 1, next.P2Sets)
		assert.Len(t, next.Sets, 1)
	})
}

func TestFinishMatch(t *testing.T) {
	t.Run("rejected while undecided", func(t *testing.T) {
		s := award(t, NewState(), Side1, 11)
		_, err := FinishMatch(s)
		assert.ErrorIs(t, err, ErrMatchUndecided)
	})

	t.Run("returns the set history", func(t *testing.T) {
		s := award(t, NewState(), Side1, 11)
		var err error
		s, err = StartNextSet(s)
		require.NoError(t, err)
		s = award(t, s, Side2, 11)
		s, err = StartNextSet(s)
		require.NoError(t, err)
		s = award(t, s, Side1, 11)
		require.True(t, s.Finished)

		sets, err := FinishMatch(s)
		require.NoError(t, err)
		assert.Equal(t, []SetScore{
			{P1: 11, P2: 0},
			{P1: 0, P2: 11},
			{P1: 11, P2: 0},
		}, sets)
	})
}

func TestStateValueSemantics(t *testing.T) {
	// Operations must not mutate their input, set history included.
	s := award(t, NewState(), Side1, 10)
	before := s

	after := award(t, s, Side1, 1)
	require.True(t, after.SetFinished)

	assert.Equal(t, 10, before.P1Points)
	assert.Empty(t, before.Sets)
	assert.Len(t, after.Sets, 1)
}
