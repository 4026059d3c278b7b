package services

import "errors"

// Shared error taxonomy surfaced to handlers. Every failure here is local and
// recoverable by the caller; none is fatal to the process.
var (
	// Not found
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Validation and business rules
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrInsufficientPlayers  = errors.New("at least 2 players are required to start a tournament")
	ErrMatchAlreadyFinished = errors.New("match is already finished")
	ErrInvalidMatchState    = errors.New("match is not in a scorable state")
	ErrMatchUndecided       = errors.New("match has not been decided yet")
	ErrInvalidSide          = errors.New("side must be 1 or 2")

	// Avatar storage
	ErrAvatarStorageDisabled   = errors.New("avatar storage is not configured")
	ErrUnsupportedAvatarFormat = errors.New("unsupported avatar content type")
)
