package models

import "time"

// TournamentStatus represents tournament statuses, matching the values stored in the DB.
type TournamentStatus string

const (
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
	TournamentStatusArchived  TournamentStatus = "archived"
)

// Tournament is one single-elimination run over the registered player pool.
// The "current" tournament is the most recently created one whose status is
// not archived; archiving preserves history instead of deleting it.
type Tournament struct {
	ID        int              `json:"id"`
	Status    TournamentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}
