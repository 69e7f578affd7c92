package service

import (
	"context"
	"fmt"
	"strconv"

	"workclock-backend/internal/config"
	apperrors "workclock-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubDirectory lists assigned people from a GitHub organization. The
// board ID maps to a team slug; an empty board lists the whole org.
type GitHubDirectory struct {
	cfg    *config.Config
	client *github.Client
}

// NewGitHubDirectory creates a new GitHub-backed directory
func NewGitHubDirectory(cfg *config.Config) *GitHubDirectory {
	var client *github.Client
	if cfg.GitHubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}
	return &GitHubDirectory{cfg: cfg, client: client}
}

// ListAssignedPeople lists the members of the configured organization or of
// one of its teams. GitHub does not expose member timezones, so entries come
// back with an empty zone and resolve through preferences downstream.
func (s *GitHubDirectory) ListAssignedPeople(ctx context.Context, boardID string) ([]DirectoryPerson, error) {
	if s.cfg.GitHubOrg == "" {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	var people []DirectoryPerson
	if boardID != "" && boardID != s.cfg.GitHubOrg {
		opts := &github.TeamListTeamMembersOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		}
		for {
			users, resp, err := s.client.Teams.ListTeamMembersBySlug(ctx, s.cfg.GitHubOrg, boardID, opts)
			if err != nil {
				if resp != nil && resp.StatusCode == 404 {
					return nil, apperrors.ErrBoardNotFound
				}
				return nil, fmt.Errorf("github team members fetch failed: %w", err)
			}
			people = append(people, toDirectoryPeople(users)...)
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return people, nil
	}

	opts := &github.ListMembersOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		users, resp, err := s.client.Organizations.ListMembers(ctx, s.cfg.GitHubOrg, opts)
		if err != nil {
			return nil, fmt.Errorf("github org members fetch failed: %w", err)
		}
		people = append(people, toDirectoryPeople(users)...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return people, nil
}

func toDirectoryPeople(users []*github.User) []DirectoryPerson {
	out := make([]DirectoryPerson, 0, len(users))
	for _, u := range users {
		if u == nil || u.GetLogin() == "" {
			continue
		}
		out = append(out, DirectoryPerson{
			ID:        strconv.FormatInt(u.GetID(), 10),
			Name:      u.GetLogin(),
			AvatarURL: u.GetAvatarURL(),
		})
	}
	return out
}
