package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/logger"
	"workclock-backend/internal/settings"

	"github.com/go-playground/validator/v10"
)

// SettingsStore is the persistence surface the settings service needs.
type SettingsStore interface {
	Load(key string) (json.RawMessage, error)
	Save(key string, value json.RawMessage) error
}

// SettingsService owns the preferences aggregate: one JSON document holding
// defaults, view options and per-person overrides, stored whole under a
// fixed key.
type SettingsService struct {
	store     SettingsStore
	notifier  Notifier
	validator *validator.Validate
	key       string
	log       *logger.Logger

	now func() time.Time
}

// NewSettingsService creates a new settings service
func NewSettingsService(store SettingsStore, notifier Notifier, validate *validator.Validate, key string) *SettingsService {
	if key == "" {
		key = "workclock:user:settings"
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SettingsService{
		store:     store,
		notifier:  notifier,
		validator: validate,
		key:       key,
		log:       logger.WithComponent("settings"),
		now:       time.Now,
	}
}

// Get loads the stored preferences. A missing or malformed document yields
// the defaults; malformed documents are logged, never surfaced as errors.
func (s *SettingsService) Get(ctx context.Context) (settings.Preferences, error) {
	raw, err := s.store.Load(s.key)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return settings.Defaults(), nil
	}
	if err != nil {
		return settings.Preferences{}, apperrors.NewPersistenceError("load settings", err)
	}

	prefs, err := settings.Normalize(raw)
	if errors.Is(err, apperrors.ErrMalformedPreferences) {
		s.log.Warn("Stored preferences document is malformed, falling back to defaults")
		return prefs, nil
	}
	if err != nil {
		return settings.Defaults(), nil
	}
	return prefs, nil
}

// Update merges the incoming document into the latest stored preferences and
// saves the whole aggregate. Fields absent from the request keep their
// stored values.
func (s *SettingsService) Update(ctx context.Context, raw json.RawMessage) (settings.Preferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return settings.Preferences{}, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &prefs); err != nil {
			return settings.Preferences{}, apperrors.NewValidationError("preferences", "malformed preferences document")
		}
	}
	if err := s.validator.Struct(prefs); err != nil {
		return settings.Preferences{}, apperrors.NewValidationError("preferences", err.Error())
	}
	if err := s.validate(prefs); err != nil {
		return settings.Preferences{}, err
	}

	if err := s.save(ctx, prefs); err != nil {
		return settings.Preferences{}, err
	}
	s.notifier.Notify(ctx, Notification{Type: "success", Message: "Settings saved."})
	return prefs, nil
}

// ListOverrides returns the per-person overrides of the stored aggregate.
func (s *SettingsService) ListOverrides(ctx context.Context) (map[string]settings.Override, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return prefs.UserOverrides, nil
}

// PutOverride creates or replaces the override stored under key. The key is
// a person ID; name keys are still honored on reads for old documents.
func (s *SettingsService) PutOverride(ctx context.Context, key string, ov settings.Override) (settings.Override, error) {
	if key == "" {
		return settings.Override{}, apperrors.NewValidationError("key", "override key is required")
	}
	if ov.Timezone != "" {
		if _, err := time.LoadLocation(ov.Timezone); err != nil {
			return settings.Override{}, apperrors.NewInvalidTimeZoneError(ov.Timezone)
		}
	}
	if err := s.validator.Struct(ov); err != nil {
		return settings.Override{}, apperrors.NewValidationError("override", err.Error())
	}
	ov.UpdatedAt = s.now().UnixMilli()

	prefs, err := s.Get(ctx)
	if err != nil {
		return settings.Override{}, err
	}
	if prefs.UserOverrides == nil {
		prefs.UserOverrides = map[string]settings.Override{}
	}
	prefs.UserOverrides[key] = ov

	if err := s.save(ctx, prefs); err != nil {
		return settings.Override{}, err
	}
	s.notifier.Notify(ctx, Notification{Type: "success", Message: "Override saved."})
	return ov, nil
}

// DeleteOverride removes the override stored under key.
func (s *SettingsService) DeleteOverride(ctx context.Context, key string) error {
	prefs, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if _, ok := prefs.UserOverrides[key]; !ok {
		return apperrors.ErrOverrideNotFound
	}
	delete(prefs.UserOverrides, key)

	if err := s.save(ctx, prefs); err != nil {
		return err
	}
	s.notifier.Notify(ctx, Notification{Type: "success", Message: "Override removed."})
	return nil
}

func (s *SettingsService) validate(prefs settings.Preferences) error {
	if prefs.Timezone != "" {
		if _, err := time.LoadLocation(prefs.Timezone); err != nil {
			return apperrors.NewInvalidTimeZoneError(prefs.Timezone)
		}
	}
	if !prefs.SortCriteria.IsValid() {
		return apperrors.ErrInvalidSortCriteria
	}
	if !prefs.SortDirection.IsValid() {
		return apperrors.ErrInvalidSortDirection
	}
	if prefs.PageSize < 1 {
		return apperrors.NewValidationError("pageSize", "page size must be at least 1")
	}
	return nil
}

func (s *SettingsService) save(ctx context.Context, prefs settings.Preferences) error {
	doc, err := prefs.Encode()
	if err != nil {
		return apperrors.NewPersistenceError("encode settings", err)
	}
	if err := s.store.Save(s.key, doc); err != nil {
		s.notifier.Notify(ctx, Notification{Type: "error", Message: "Could not save settings."})
		return apperrors.NewPersistenceError("save settings", err)
	}
	return nil
}
