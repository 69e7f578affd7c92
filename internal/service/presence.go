package service

import (
	"context"
	"time"

	"workclock-backend/internal/database/models"
	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/logger"
	"workclock-backend/internal/presence"
	"workclock-backend/internal/settings"
	"workclock-backend/internal/view"
)

// PersonStore is the cache surface the presence service needs.
type PersonStore interface {
	ListByBoard(boardID string) ([]models.Person, error)
	ReplaceBoard(boardID string, people []models.Person) error
}

// ViewQuery carries per-request view options. Zero values fall back to the
// stored preferences.
type ViewQuery struct {
	SortBy     string
	Direction  string
	Page       int
	PageSize   int
	OnlineOnly *bool
}

// PresenceService resolves who is working right now: directory people plus
// stored preferences projected into status rows, then sorted, filtered and
// paged for the caller.
type PresenceService struct {
	directory Directory
	people    PersonStore
	settings  *SettingsService
	log       *logger.Logger

	now func() time.Time
}

// NewPresenceService creates a new presence service
func NewPresenceService(directory Directory, people PersonStore, settingsService *SettingsService) *PresenceService {
	return &PresenceService{
		directory: directory,
		people:    people,
		settings:  settingsService,
		log:       logger.WithComponent("presence"),
		now:       time.Now,
	}
}

// GetPresence builds the presence page for a board. The directory is asked
// first; when it fails the last cached snapshot serves the request, so a
// directory outage degrades to stale data instead of an error.
func (s *PresenceService) GetPresence(ctx context.Context, boardID string, q ViewQuery) (view.Page, error) {
	prefs, err := s.settings.Get(ctx)
	if err != nil {
		return view.Page{}, err
	}

	persons, err := s.loadPeople(ctx, boardID)
	if err != nil {
		return view.Page{}, err
	}

	s.warnNameKeyedOverrides(persons, prefs)

	rows := presence.Project(persons, prefs, s.now())
	return view.Apply(rows, s.viewOptions(prefs, q)), nil
}

// Sync refreshes the cached snapshot for a board from the directory.
func (s *PresenceService) Sync(ctx context.Context, boardID string) (int, error) {
	fetched, err := s.directory.ListAssignedPeople(ctx, boardID)
	if err != nil {
		return 0, err
	}

	snapshot := make([]models.Person, 0, len(fetched))
	for _, p := range fetched {
		snapshot = append(snapshot, models.Person{
			ExternalID: p.ID,
			Name:       p.Name,
			AvatarURL:  p.AvatarURL,
			Timezone:   p.Timezone,
		})
	}
	if err := s.people.ReplaceBoard(boardID, snapshot); err != nil {
		return 0, apperrors.NewPersistenceError("replace board snapshot", err)
	}
	return len(snapshot), nil
}

// ListPeople returns the directory people for a board, served from the cache
// when the directory is unreachable.
func (s *PresenceService) ListPeople(ctx context.Context, boardID string) ([]presence.Person, error) {
	return s.loadPeople(ctx, boardID)
}

func (s *PresenceService) loadPeople(ctx context.Context, boardID string) ([]presence.Person, error) {
	fetched, err := s.directory.ListAssignedPeople(ctx, boardID)
	if err == nil {
		snapshot := make([]models.Person, 0, len(fetched))
		persons := make([]presence.Person, 0, len(fetched))
		for _, p := range fetched {
			snapshot = append(snapshot, models.Person{
				ExternalID: p.ID,
				Name:       p.Name,
				AvatarURL:  p.AvatarURL,
				Timezone:   p.Timezone,
			})
			persons = append(persons, p.Person())
		}
		if cacheErr := s.people.ReplaceBoard(boardID, snapshot); cacheErr != nil {
			s.log.WithField("error", cacheErr).Warn("Could not refresh directory cache")
		}
		return persons, nil
	}

	s.log.WithFields(map[string]interface{}{
		"board": boardID,
		"error": err,
	}).Warn("Directory unavailable, serving cached snapshot")

	cached, cacheErr := s.people.ListByBoard(boardID)
	if cacheErr != nil {
		return nil, err
	}
	persons := make([]presence.Person, 0, len(cached))
	for _, p := range cached {
		persons = append(persons, presence.Person{
			ID:        p.ExternalID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
			Timezone:  p.Timezone,
		})
	}
	return persons, nil
}

// warnNameKeyedOverrides logs once per request when a person only matches an
// override through the deprecated name key.
func (s *PresenceService) warnNameKeyedOverrides(persons []presence.Person, prefs settings.Preferences) {
	for _, p := range persons {
		if _, ok := prefs.UserOverrides[p.ID]; ok {
			continue
		}
		if _, ok := prefs.UserOverrides[p.Name]; ok {
			s.log.WithFields(map[string]interface{}{
				"person": p.Name,
			}).Warn("Override keyed by display name is deprecated, re-save it keyed by person ID")
		}
	}
}

func (s *PresenceService) viewOptions(prefs settings.Preferences, q ViewQuery) view.Options {
	opts := view.Options{
		SortBy:     prefs.SortCriteria,
		Direction:  prefs.SortDirection,
		Page:       1,
		PageSize:   prefs.PageSize,
		OnlineOnly: prefs.ShowOnlineOnly,
	}
	if q.SortBy != "" {
		if c := settings.SortCriteria(q.SortBy); c.IsValid() {
			opts.SortBy = c
		}
	}
	if q.Direction != "" {
		if d := settings.SortDirection(q.Direction); d.IsValid() {
			opts.Direction = d
		}
	}
	if q.Page > 0 {
		opts.Page = q.Page
	}
	if q.PageSize > 0 {
		opts.PageSize = q.PageSize
	}
	if q.OnlineOnly != nil {
		opts.OnlineOnly = *q.OnlineOnly
	}
	return opts
}
