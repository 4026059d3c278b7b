package brackets

import (
	"sort"

	"github.com/WD-Technology/muzagrouppingpong/models"
)

// Advancement is what follows a fully decided round: either the next round's
// pairings, or tournament completion. The zero value means "nothing to do".
type Advancement struct {
	NextRound  []Pairing
	Completed  bool
	ChampionID int
}

// Pending reports whether the snapshot produced no action.
func (a Advancement) Pending() bool {
	return !a.Completed && len(a.NextRound) == 0
}

// AdvanceRound inspects a snapshot of one round and decides what comes next.
//
// While any match in the round lacks a winner, or next-round matches already
// exist (the idempotency guard against concurrent completions of the same
// round), nothing happens. A round of exactly one decided match completes
// the tournament with that match's winner as champion. Otherwise winners are
// collected in bracket order (match creation order, enforced here by an
// explicit sort on match id) and paired consecutively without shuffling; an
// odd winner count gives the last winner a bye, and a sole surviving bye
// winner completes the tournament instead of producing a degenerate match.
func AdvanceRound(roundMatches, nextRoundMatches []*models.Match) Advancement {
	if len(roundMatches) == 0 {
		return Advancement{}
	}
	for _, m := range roundMatches {
		if m.WinnerID == nil {
			return Advancement{}
		}
	}
	if len(nextRoundMatches) > 0 {
		return Advancement{}
	}

	ordered := make([]*models.Match, len(roundMatches))
	copy(ordered, roundMatches)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	winners := make([]int, len(ordered))
	for i, m := range ordered {
		winners[i] = *m.WinnerID
	}

	if len(winners) == 1 {
		return Advancement{Completed: true, ChampionID: winners[0]}
	}

	round := ordered[0].Round
	return Advancement{NextRound: pairConsecutive(winners, round+1)}
}
