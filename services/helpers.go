package services

import (
	"fmt"
	"strings"

	"github.com/WD-Technology/muzagrouppingpong/models"
	"github.com/WD-Technology/muzagrouppingpong/storage"
)

func populatePlayerAvatarURL(player *models.Player, uploader storage.FileUploader) {
	if player == nil || uploader == nil {
		return
	}
	if player.AvatarKey != nil && *player.AvatarKey != "" {
		url := uploader.GetPublicURL(*player.AvatarKey)
		if url != "" {
			player.AvatarURL = &url
		}
	}
}

// splitPlayerNames turns a registration input like "Ana, Bruno, Carla" into
// individual trimmed names, dropping empties.
func splitPlayerNames(input string) []string {
	parts := strings.Split(input, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func avatarExtension(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAvatarFormat, contentType)
	}
}
