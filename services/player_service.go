package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/WD-Technology/muzagrouppingpong/models"
	"github.com/WD-Technology/muzagrouppingpong/repositories"
	"github.com/WD-Technology/muzagrouppingpong/storage"
)

type PlayerService interface {
	ListPlayers(ctx context.Context) ([]*models.Player, error)
	// RegisterPlayers accepts one name or several comma-separated names and
	// creates a player per name.
	RegisterPlayers(ctx context.Context, input string) ([]*models.Player, error)
	// DeletePlayer removes the player and nulls its references in match rows;
	// match rows themselves are never deleted.
	DeletePlayer(ctx context.Context, id int) error
	DeleteAllPlayers(ctx context.Context) error
	UploadAvatar(ctx context.Context, id int, contentType string, body io.Reader) (*models.Player, error)
}

type playerService struct {
	txr        repositories.Transactor
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	uploader   storage.FileUploader
}

func NewPlayerService(
	txr repositories.Transactor,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) PlayerService {
	return &playerService{
		txr:        txr,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		uploader:   uploader,
	}
}

func (s *playerService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	for _, player := range players {
		populatePlayerAvatarURL(player, s.uploader)
	}
	return players, nil
}

func (s *playerService) RegisterPlayers(ctx context.Context, input string) ([]*models.Player, error) {
	names := splitPlayerNames(input)
	if len(names) == 0 {
		return nil, ErrPlayerNameRequired
	}

	players := make([]*models.Player, 0, len(names))
	err := s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		for _, name := range names {
			player := &models.Player{Name: name}
			if err := s.playerRepo.Create(ctx, exec, player); err != nil {
				return err
			}
			players = append(players, player)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register players: %w", err)
	}
	return players, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	err := s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.ClearPlayerRefs(ctx, exec, id); err != nil {
			return err
		}
		return s.playerRepo.Delete(ctx, exec, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return nil
}

func (s *playerService) DeleteAllPlayers(ctx context.Context) error {
	err := s.txr.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.ClearAllPlayerRefs(ctx, exec); err != nil {
			return err
		}
		return s.playerRepo.DeleteAll(ctx, exec)
	})
	if err != nil {
		return fmt.Errorf("failed to delete all players: %w", err)
	}
	return nil
}

func (s *playerService) UploadAvatar(ctx context.Context, id int, contentType string, body io.Reader) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrAvatarStorageDisabled
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %d: %w", id, err)
	}

	ext, err := avatarExtension(contentType)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/player_%d%s", player.ID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("failed to upload avatar for player %d: %w", id, err)
	}

	oldKey := player.AvatarKey
	if err := s.playerRepo.UpdateAvatarKey(ctx, id, &key); err != nil {
		return nil, fmt.Errorf("failed to store avatar key for player %d: %w", id, err)
	}
	if oldKey != nil && *oldKey != key {
		// Best effort; a stale object is harmless.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	player.AvatarKey = &key
	populatePlayerAvatarURL(player, s.uploader)
	return player, nil
}
