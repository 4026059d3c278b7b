package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/WD-Technology/muzagrouppingpong/models"
	"github.com/WD-Technology/muzagrouppingpong/repositories"
	"github.com/WD-Technology/muzagrouppingpong/storage"
)

// The fakes below back the service tests with in-memory state. They honor the
// repository contracts the services rely on (ordering, sentinel errors,
// reference clearing) while ignoring the exec argument, so a pass-through
// transactor stands in for the real one.

type fakeTransactor struct{}

func (fakeTransactor) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

type fakePlayerRepo struct {
	players map[int]*models.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]*models.Player), nextID: 1}
}

func (r *fakePlayerRepo) add(name string) *models.Player {
	p := &models.Player{ID: r.nextID, Name: name, CreatedAt: time.Now()}
	r.players[p.ID] = p
	r.nextID++
	return p
}

func (r *fakePlayerRepo) Create(_ context.Context, _ repositories.SQLExecutor, player *models.Player) error {
	stored := r.add(player.Name)
	player.ID = stored.ID
	player.CreatedAt = stored.CreatedAt
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]*models.Player, error) {
	out := make([]*models.Player, 0, len(r.players))
	for _, p := range r.players {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakePlayerRepo) UpdateAvatarKey(_ context.Context, id int, key *string) error {
	p, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	p.AvatarKey = key
	return nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.players = make(map[int]*models.Player)
	return nil
}

type fakeMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]*models.Match), nextID: 1}
}

func (r *fakeMatchRepo) add(m models.Match) *models.Match {
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	r.nextID++
	stored := m
	r.matches[stored.ID] = &stored
	return &stored
}

func (r *fakeMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, match *models.Match) error {
	stored := r.add(*match)
	match.ID = stored.ID
	match.CreatedAt = stored.CreatedAt
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int, round *int) ([]*models.Match, error) {
	out := make([]*models.Match, 0)
	for _, m := range r.matches {
		if m.TournamentID != tournamentID {
			continue
		}
		if round != nil && m.Round != *round {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeMatchRepo) UpdateResult(_ context.Context, _ repositories.SQLExecutor, id int, score1, score2 int, winnerID *int, setsDetail string) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Score1 = score1
	m.Score2 = score2
	m.WinnerID = winnerID
	detail := setsDetail
	m.SetsDetail = &detail
	return nil
}

func (r *fakeMatchRepo) ClearPlayerRefs(_ context.Context, _ repositories.SQLExecutor, playerID int) error {
	for _, m := range r.matches {
		if m.Player1ID != nil && *m.Player1ID == playerID {
			m.Player1ID = nil
		}
		if m.Player2ID != nil && *m.Player2ID == playerID {
			m.Player2ID = nil
		}
		if m.WinnerID != nil && *m.WinnerID == playerID {
			m.WinnerID = nil
		}
	}
	return nil
}

func (r *fakeMatchRepo) ClearAllPlayerRefs(_ context.Context, _ repositories.SQLExecutor) error {
	for _, m := range r.matches {
		m.Player1ID = nil
		m.Player2ID = nil
		m.WinnerID = nil
	}
	return nil
}

type fakeTournamentRepo struct {
	tournaments map[int]*models.Tournament
	nextID      int
	locks       []int
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{tournaments: make(map[int]*models.Tournament), nextID: 1}
}

func (r *fakeTournamentRepo) add(status models.TournamentStatus) *models.Tournament {
	t := &models.Tournament{ID: r.nextID, Status: status, CreatedAt: time.Now()}
	r.tournaments[t.ID] = t
	r.nextID++
	return t
}

func (r *fakeTournamentRepo) Create(_ context.Context, _ repositories.SQLExecutor, tournament *models.Tournament) error {
	stored := r.add(tournament.Status)
	tournament.ID = stored.ID
	tournament.CreatedAt = stored.CreatedAt
	return nil
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTournamentRepo) GetCurrent(_ context.Context) (*models.Tournament, error) {
	var current *models.Tournament
	for _, t := range r.tournaments {
		if t.Status == models.TournamentStatusArchived {
			continue
		}
		if current == nil || t.ID > current.ID {
			current = t
		}
	}
	if current == nil {
		return nil, repositories.ErrTournamentNotFound
	}
	copied := *current
	return &copied, nil
}

func (r *fakeTournamentRepo) UpdateStatus(_ context.Context, _ repositories.SQLExecutor, id int, status models.TournamentStatus) error {
	t, ok := r.tournaments[id]
	if !ok {
		return repositories.ErrTournamentNotFound
	}
	t.Status = status
	return nil
}

func (r *fakeTournamentRepo) ArchiveCurrent(_ context.Context, _ repositories.SQLExecutor) error {
	for _, t := range r.tournaments {
		if t.Status == models.TournamentStatusActive || t.Status == models.TournamentStatusCompleted {
			t.Status = models.TournamentStatusArchived
		}
	}
	return nil
}

func (r *fakeTournamentRepo) LockForAdvancement(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.locks = append(r.locks, id)
	return nil
}

type fakeUploader struct {
	uploads map[string]string
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploads: make(map[string]string)}
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, _ io.Reader) (*storage.UploadResult, error) {
	u.uploads[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return fmt.Sprintf("https://cdn.example.test/%s", key)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
