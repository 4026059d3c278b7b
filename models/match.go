package models

import "time"

// Match is a single bracket slot. Player references are nullable: a missing
// player2 denotes a bye, and deleting a player nulls its references without
// touching the match row. Score1/Score2 count sets won, not points. SetsDetail
// holds the opaque scoring-state blob owned by the scoring engine.
type Match struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	Round        int       `json:"round"`
	Player1ID    *int      `json:"player1_id"`
	Player2ID    *int      `json:"player2_id"`
	Score1       int       `json:"score1"`
	Score2       int       `json:"score2"`
	WinnerID     *int      `json:"winner_id,omitempty"`
	SetsDetail   *string   `json:"sets_detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Display names joined from the players table, nil for vacated slots.
	Player1Name *string `json:"p1_name,omitempty"`
	Player2Name *string `json:"p2_name,omitempty"`
	WinnerName  *string `json:"winner_name,omitempty"`
}

// IsBye reports whether the match is an automatic advancement slot.
func (m *Match) IsBye() bool {
	return m.Player1ID != nil && m.Player2ID == nil
}
