package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/WD-Technology/muzagrouppingpong/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	// GetCurrent returns the most recently created tournament whose status is
	// active or completed, or ErrTournamentNotFound when none exists.
	GetCurrent(ctx context.Context) (*models.Tournament, error)
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.TournamentStatus) error
	// ArchiveCurrent moves every active or completed tournament to archived.
	ArchiveCurrent(ctx context.Context, exec SQLExecutor) error
	// LockForAdvancement serializes round advancement for one tournament for
	// the lifetime of the surrounding transaction.
	LockForAdvancement(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error {
	if exec == nil {
		exec = r.db
	}
	query := `
		INSERT INTO tournaments (status)
		VALUES ($1)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query, tournament.Status).Scan(&tournament.ID, &tournament.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tournament: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT id, status, created_at FROM tournaments WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *postgresTournamentRepository) GetCurrent(ctx context.Context) (*models.Tournament, error) {
	query := `
		SELECT id, status, created_at
		FROM tournaments
		WHERE status IN ($1, $2)
		ORDER BY id DESC
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, models.TournamentStatusActive, models.TournamentStatusCompleted)
	return r.scanOne(row, 0)
}

func (r *postgresTournamentRepository) scanOne(row *sql.Row, id int) (*models.Tournament, error) {
	tournament := &models.Tournament{}
	err := row.Scan(&tournament.ID, &tournament.Status, &tournament.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to scan tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (r *postgresTournamentRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.TournamentStatus) error {
	if exec == nil {
		exec = r.db
	}
	result, err := exec.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status of tournament %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) ArchiveCurrent(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		exec = r.db
	}
	query := `UPDATE tournaments SET status = $1 WHERE status IN ($2, $3)`
	_, err := exec.ExecContext(ctx, query,
		models.TournamentStatusArchived,
		models.TournamentStatusActive,
		models.TournamentStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to archive current tournaments: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) LockForAdvancement(ctx context.Context, exec SQLExecutor, id int) error {
	if exec == nil {
		exec = r.db
	}
	// pg_advisory_xact_lock releases automatically at transaction end.
	if _, err := exec.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, id); err != nil {
		return fmt.Errorf("failed to acquire advancement lock for tournament %d: %w", id, err)
	}
	return nil
}
