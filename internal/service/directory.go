package service

import (
	"context"

	"workclock-backend/internal/config"
	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/presence"
)

// DirectoryPerson is one person as reported by the external directory.
type DirectoryPerson struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Timezone  string `json:"timezone"`
}

// Directory lists the people assigned to a board. Implementations talk to an
// external system and may fail; callers decide how to degrade.
type Directory interface {
	ListAssignedPeople(ctx context.Context, boardID string) ([]DirectoryPerson, error)
}

// NewDirectory builds the configured directory provider.
func NewDirectory(cfg *config.Config) (Directory, error) {
	switch cfg.DirectoryProvider {
	case "github":
		return NewGitHubDirectory(cfg), nil
	case "board", "":
		if cfg.BoardAPIBaseURL == "" {
			return nil, apperrors.ErrDirectoryNotConfigured
		}
		return NewBoardDirectory(cfg), nil
	}
	return nil, apperrors.ErrDirectoryNotConfigured
}

// Person converts a directory entry to the presence engine input type.
func (d DirectoryPerson) Person() presence.Person {
	return presence.Person{
		ID:        d.ID,
		Name:      d.Name,
		AvatarURL: d.AvatarURL,
		Timezone:  d.Timezone,
	}
}
