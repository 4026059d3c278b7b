package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/WD-Technology/muzagrouppingpong/brackets"
	"github.com/WD-Technology/muzagrouppingpong/models"
	"github.com/WD-Technology/muzagrouppingpong/repositories"
	"github.com/WD-Technology/muzagrouppingpong/storage"
)

// TournamentBracket is a tournament together with its matches in bracket
// order (round ascending, creation order within a round) and the player pool
// it was drawn from.
type TournamentBracket struct {
	Tournament *models.Tournament `json:"tournament"`
	Matches    []*models.Match    `json:"matches"`
	Players    []*models.Player   `json:"players,omitempty"`
}

type TournamentService interface {
	// StartTournament generates a bracket from the current player pool:
	// a new active tournament plus its shuffled round-1 pairings, byes
	// resolved at creation. Nothing is written when the pool is too small.
	StartTournament(ctx context.Context) (*TournamentBracket, error)
	// CurrentBracket returns the latest non-archived tournament with its
	// matches, or (nil, nil) when there is none.
	CurrentBracket(ctx context.Context) (*TournamentBracket, error)
	// ResetTournament archives the current tournament(s), preserving history.
	ResetTournament(ctx context.Context) error
}

type tournamentService struct {
	txr            repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	uploader       storage.FileUploader
	logger         *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTournamentService(
	txr repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	rng *rand.Rand,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		txr:            txr,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		uploader:       uploader,
		rng:            rng,
		logger:         logger,
	}
}

func (s *tournamentService) StartTournament(ctx context.Context) (*TournamentBracket, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for bracket generation: %w", err)
	}

	s.mu.Lock()
	pairings, err := brackets.GeneratePairings(players, s.rng)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, brackets.ErrInsufficientPlayers) {
			return nil, ErrInsufficientPlayers
		}
		return nil, fmt.Errorf("failed to generate pairings: %w", err)
	}

	tournament := &models.Tournament{Status: models.TournamentStatusActive}
	matches := make([]*models.Match, 0, len(pairings))

	err = s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournamentRepo.Create(ctx, exec, tournament); err != nil {
			return err
		}
		for _, p := range pairings {
			match := matchFromPairing(tournament.ID, p)
			if err := s.matchRepo.Create(ctx, exec, match); err != nil {
				return err
			}
			matches = append(matches, match)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist generated bracket: %w", err)
	}

	s.logger.Info("tournament started",
		slog.Int("tournament_id", tournament.ID),
		slog.Int("players", len(players)),
		slog.Int("round1_matches", len(matches)))

	return &TournamentBracket{Tournament: tournament, Matches: matches}, nil
}

func (s *tournamentService) CurrentBracket(ctx context.Context) (*TournamentBracket, error) {
	tournament, err := s.tournamentRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load current tournament: %w", err)
	}

	var (
		matches []*models.Match
		players []*models.Player
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gctx, nil, tournament.ID, nil)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load bracket for tournament %d: %w", tournament.ID, err)
	}

	// Avatar URLs come from the player pool; match rows only join names.
	for _, p := range players {
		populatePlayerAvatarURL(p, s.uploader)
	}

	return &TournamentBracket{Tournament: tournament, Matches: matches, Players: players}, nil
}

func (s *tournamentService) ResetTournament(ctx context.Context) error {
	err := s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		return s.tournamentRepo.ArchiveCurrent(ctx, exec)
	})
	if err != nil {
		return fmt.Errorf("failed to reset tournament: %w", err)
	}
	s.logger.Info("current tournaments archived")
	return nil
}

func matchFromPairing(tournamentID int, p brackets.Pairing) *models.Match {
	return &models.Match{
		TournamentID: tournamentID,
		Round:        p.Round,
		Player1ID:    &p.Player1ID,
		Player2ID:    p.Player2ID,
		WinnerID:     p.WinnerID,
	}
}
