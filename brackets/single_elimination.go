package brackets

import (
	"errors"
	"math/rand"

	"github.com/WD-Technology/muzagrouppingpong/models"
)

var ErrInsufficientPlayers = errors.New("at least 2 players are required to generate a bracket")

// matchSetsToWin mirrors the best-of-three threshold the scorer plays to.
const matchSetsToWin = 2

// Pairing is a match-creation intent. The engine never writes anything
// itself; the caller persists pairings as match rows. A bye is a pairing
// with no second player and the winner pre-assigned to the first.
type Pairing struct {
	Round     int
	Player1ID int
	Player2ID *int
	WinnerID  *int
}

// IsBye reports whether the pairing auto-advances its lone player.
func (p Pairing) IsBye() bool {
	return p.Player2ID == nil
}

// GeneratePairings shuffles the player pool with rng and pairs consecutively:
// (1,2), (3,4), ... An unpaired last player gets a bye. Fails with
// ErrInsufficientPlayers below 2 players, producing nothing.
func GeneratePairings(players []*models.Player, rng *rand.Rand) ([]Pairing, error) {
	if len(players) < 2 {
		return nil, ErrInsufficientPlayers
	}

	ids := make([]int, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	return pairConsecutive(ids, 1), nil
}

func pairConsecutive(playerIDs []int, round int) []Pairing {
	pairings := make([]Pairing, 0, (len(playerIDs)+1)/2)
	for i := 0; i < len(playerIDs); i += 2 {
		p := Pairing{Round: round, Player1ID: playerIDs[i]}
		if i+1 < len(playerIDs) {
			p2 := playerIDs[i+1]
			p.Player2ID = &p2
		} else {
			// Bye: the lone player advances immediately.
			w := playerIDs[i]
			p.WinnerID = &w
		}
		pairings = append(pairings, p)
	}
	return pairings
}

// DetermineWinner derives the winner reference from a match's set counts:
// the side with at least 2 sets and strictly more than the opponent. Returns
// nil while the match is undecided or the counts are invalid.
func DetermineWinner(m *models.Match) *int {
	if m.Score1 >= matchSetsToWin && m.Score1 > m.Score2 {
		return m.Player1ID
	}
	if m.Score2 >= matchSetsToWin && m.Score2 > m.Score1 {
		return m.Player2ID
	}
	return nil
}
