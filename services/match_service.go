package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/WD-Technology/muzagrouppingpong/brackets"
	"github.com/WD-Technology/muzagrouppingpong/models"
	"github.com/WD-Technology/muzagrouppingpong/repositories"
	"github.com/WD-Technology/muzagrouppingpong/scoring"
)

// MatchScore is the result of a scoring action: the updated match record and,
// while the match is live, the scoring state the UI renders from.
type MatchScore struct {
	Match *models.Match  `json:"match"`
	State *scoring.State `json:"state,omitempty"`
}

type MatchService interface {
	GetMatch(ctx context.Context, id int) (*MatchScore, error)
	AwardPoint(ctx context.Context, matchID int, side scoring.Side) (*MatchScore, error)
	UndoPoint(ctx context.Context, matchID int, side scoring.Side) (*MatchScore, error)
	StartNextSet(ctx context.Context, matchID int) (*MatchScore, error)
	// FinishMatch replaces the live scoring blob of a decided match with the
	// permanent set-history summary and re-runs round advancement (a no-op
	// when the completing point already triggered it).
	FinishMatch(ctx context.Context, matchID int) (*MatchScore, error)
}

type matchService struct {
	txr            repositories.Transactor
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	logger         *slog.Logger
}

func NewMatchService(
	txr repositories.Transactor,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		txr:            txr,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*MatchScore, error) {
	match, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	score := &MatchScore{Match: match}
	if match.WinnerID == nil && match.Player1ID != nil && match.Player2ID != nil {
		state, err := stateForMatch(match)
		if err != nil {
			return nil, err
		}
		score.State = &state
	}
	return score, nil
}

func (s *matchService) AwardPoint(ctx context.Context, matchID int, side scoring.Side) (*MatchScore, error) {
	return s.applyPointAction(ctx, matchID, func(state scoring.State) (scoring.State, error) {
		return scoring.AwardPoint(state, side)
	})
}

func (s *matchService) UndoPoint(ctx context.Context, matchID int, side scoring.Side) (*MatchScore, error) {
	return s.applyPointAction(ctx, matchID, func(state scoring.State) (scoring.State, error) {
		return scoring.UndoPoint(state, side)
	})
}

func (s *matchService) StartNextSet(ctx context.Context, matchID int) (*MatchScore, error) {
	return s.applyPointAction(ctx, matchID, scoring.StartNextSet)
}

func (s *matchService) applyPointAction(ctx context.Context, matchID int, action func(scoring.State) (scoring.State, error)) (*MatchScore, error) {
	match, err := s.getScorableMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	state, err := stateForMatch(match)
	if err != nil {
		return nil, err
	}

	next, err := action(state)
	if err != nil {
		return nil, mapScoringError(err)
	}

	blob, err := scoring.EncodeBlob(scoring.LiveBlob(next))
	if err != nil {
		return nil, err
	}
	if err := s.persistState(ctx, match, next, blob); err != nil {
		return nil, err
	}
	return &MatchScore{Match: match, State: &next}, nil
}

func (s *matchService) FinishMatch(ctx context.Context, matchID int) (*MatchScore, error) {
	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Player1ID == nil || match.Player2ID == nil {
		return nil, ErrInvalidMatchState
	}
	state, err := stateForMatch(match)
	if err != nil {
		return nil, err
	}

	sets, err := scoring.FinishMatch(state)
	if err != nil {
		return nil, mapScoringError(err)
	}

	blob, err := scoring.EncodeBlob(scoring.SummaryBlob(sets))
	if err != nil {
		return nil, err
	}
	if err := s.persistState(ctx, match, state, blob); err != nil {
		return nil, err
	}
	return &MatchScore{Match: match}, nil
}

// persistState writes set counts, derived winner and the scoring blob in one
// update and, when that update records a winner, advances the round within
// the same transaction. The match argument is updated in place.
func (s *matchService) persistState(ctx context.Context, match *models.Match, state scoring.State, blob string) error {
	match.Score1 = state.P1Sets
	match.Score2 = state.P2Sets
	match.SetsDetail = &blob
	match.WinnerID = brackets.DetermineWinner(match)

	err := s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.UpdateResult(ctx, exec, match.ID, match.Score1, match.Score2, match.WinnerID, blob); err != nil {
			return err
		}
		if match.WinnerID == nil {
			return nil
		}
		return s.advanceRound(ctx, exec, match.TournamentID, match.Round)
	})
	if err != nil {
		return fmt.Errorf("failed to persist scoring state for match %d: %w", match.ID, err)
	}
	return nil
}

// advanceRound runs the bracket engine against a consistent snapshot of the
// round. The per-tournament advisory lock serializes concurrent completions
// of the last matches in a round; the engine's idempotency guard turns the
// losing racer into a no-op rather than an error.
func (s *matchService) advanceRound(ctx context.Context, exec repositories.SQLExecutor, tournamentID, round int) error {
	if err := s.tournamentRepo.LockForAdvancement(ctx, exec, tournamentID); err != nil {
		return err
	}

	roundMatches, err := s.matchRepo.ListByTournament(ctx, exec, tournamentID, &round)
	if err != nil {
		return err
	}
	nextRound := round + 1
	nextMatches, err := s.matchRepo.ListByTournament(ctx, exec, tournamentID, &nextRound)
	if err != nil {
		return err
	}

	adv := brackets.AdvanceRound(roundMatches, nextMatches)
	switch {
	case adv.Completed:
		if err := s.tournamentRepo.UpdateStatus(ctx, exec, tournamentID, models.TournamentStatusCompleted); err != nil {
			return err
		}
		s.logger.Info("tournament completed",
			slog.Int("tournament_id", tournamentID),
			slog.Int("champion_id", adv.ChampionID))
	case len(adv.NextRound) > 0:
		for _, p := range adv.NextRound {
			match := matchFromPairing(tournamentID, p)
			if err := s.matchRepo.Create(ctx, exec, match); err != nil {
				return err
			}
		}
		s.logger.Info("next round generated",
			slog.Int("tournament_id", tournamentID),
			slog.Int("round", nextRound),
			slog.Int("matches", len(adv.NextRound)))
	}
	return nil
}

func (s *matchService) getMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", id, err)
	}
	return match, nil
}

// getScorableMatch loads a match and rejects ones that cannot take point
// actions: already decided, a bye, or missing a deleted player.
func (s *matchService) getScorableMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.WinnerID != nil {
		return nil, ErrMatchAlreadyFinished
	}
	if match.Player1ID == nil || match.Player2ID == nil {
		return nil, ErrInvalidMatchState
	}
	return match, nil
}

// stateForMatch restores the live scoring state embedded in the match, or
// builds a fresh one for a match without a blob. A summary blob on an
// undecided match (legacy rows) rebuilds set counters from the match record
// with the current set back at love-all.
func stateForMatch(m *models.Match) (scoring.State, error) {
	if m.SetsDetail == nil || *m.SetsDetail == "" {
		state := scoring.NewState()
		state.P1Sets = m.Score1
		state.P2Sets = m.Score2
		return state, nil
	}

	blob, err := scoring.DecodeBlob(*m.SetsDetail)
	if err != nil {
		return scoring.State{}, fmt.Errorf("match %d carries an unreadable scoring blob: %w", m.ID, err)
	}
	switch blob.Kind {
	case scoring.BlobLive:
		return *blob.State, nil
	default:
		state := scoring.NewState()
		state.Sets = blob.Sets
		state.P1Sets = m.Score1
		state.P2Sets = m.Score2
		state.Finished = m.WinnerID != nil
		return state, nil
	}
}

func mapScoringError(err error) error {
	switch {
	case errors.Is(err, scoring.ErrMatchFinished):
		return ErrMatchAlreadyFinished
	case errors.Is(err, scoring.ErrMatchUndecided):
		return ErrMatchUndecided
	case errors.Is(err, scoring.ErrSetNotFinished):
		return ErrInvalidMatchState
	case errors.Is(err, scoring.ErrInvalidSide):
		return ErrInvalidSide
	default:
		return err
	}
}
