package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/WD-Technology/muzagrouppingpong/models"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match references an unknown tournament")
	ErrMatchPlayerInvalid     = errors.New("match references an unknown player")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	// ListByTournament returns matches ordered by round then creation order
	// (id), which is the bracket-order contract the advancement engine relies
	// on. Pass exec to read within a transaction, round to filter one round.
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, round *int) ([]*models.Match, error)
	// UpdateResult writes set counts, winner and the scoring blob together;
	// the three always move as one.
	UpdateResult(ctx context.Context, exec SQLExecutor, id int, score1, score2 int, winnerID *int, setsDetail string) error
	// ClearPlayerRefs nulls every reference to the player in match rows
	// without deleting the rows themselves.
	ClearPlayerRefs(ctx context.Context, exec SQLExecutor, playerID int) error
	ClearAllPlayerRefs(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	if exec == nil {
		exec = r.db
	}
	query := `
		INSERT INTO matches (tournament_id, round, player1_id, player2_id, winner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		match.TournamentID,
		match.Round,
		match.Player1ID,
		match.Player2ID,
		match.WinnerID,
	).Scan(&match.ID, &match.CreatedAt)

	return r.handleMatchError(err)
}

const matchSelectColumns = `
	m.id, m.tournament_id, m.round, m.player1_id, m.player2_id,
	m.score1, m.score2, m.winner_id, m.sets_detail, m.created_at,
	p1.name, p2.name, w.name`

const matchSelectJoins = `
	LEFT JOIN players p1 ON m.player1_id = p1.id
	LEFT JOIN players p2 ON m.player2_id = p2.id
	LEFT JOIN players w ON m.winner_id = w.id`

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT` + matchSelectColumns + `
		FROM matches m` + matchSelectJoins + `
		WHERE m.id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, round *int) ([]*models.Match, error) {
	if exec == nil {
		exec = r.db
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT` + matchSelectColumns + `
		FROM matches m` + matchSelectJoins + `
		WHERE m.tournament_id = $1`)

	args := []interface{}{tournamentID}
	if round != nil {
		queryBuilder.WriteString(" AND m.round = $" + strconv.Itoa(len(args)+1))
		args = append(args, *round)
	}
	queryBuilder.WriteString(" ORDER BY m.round ASC, m.id ASC")

	rows, err := exec.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id int, score1, score2 int, winnerID *int, setsDetail string) error {
	if exec == nil {
		exec = r.db
	}
	query := `
		UPDATE matches
		SET score1 = $1, score2 = $2, winner_id = $3, sets_detail = $4
		WHERE id = $5`

	result, err := exec.ExecContext(ctx, query, score1, score2, winnerID, setsDetail, id)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) ClearPlayerRefs(ctx context.Context, exec SQLExecutor, playerID int) error {
	if exec == nil {
		exec = r.db
	}
	statements := []string{
		`UPDATE matches SET player1_id = NULL WHERE player1_id = $1`,
		`UPDATE matches SET player2_id = NULL WHERE player2_id = $1`,
		`UPDATE matches SET winner_id = NULL WHERE winner_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := exec.ExecContext(ctx, stmt, playerID); err != nil {
			return fmt.Errorf("failed to clear references to player %d: %w", playerID, err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) ClearAllPlayerRefs(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		exec = r.db
	}
	query := `UPDATE matches SET player1_id = NULL, player2_id = NULL, winner_id = NULL`
	if _, err := exec.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear player references: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID,
		&match.TournamentID,
		&match.Round,
		&match.Player1ID,
		&match.Player2ID,
		&match.Score1,
		&match.Score2,
		&match.WinnerID,
		&match.SetsDetail,
		&match.CreatedAt,
		&match.Player1Name,
		&match.Player2Name,
		&match.WinnerName,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "matches_tournament_id_fkey":
			return ErrMatchTournamentInvalid
		case "matches_player1_id_fkey", "matches_player2_id_fkey", "matches_winner_id_fkey":
			return ErrMatchPlayerInvalid
		}
	}
	return err
}
