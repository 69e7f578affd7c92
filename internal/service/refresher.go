package service

import (
	"context"
	"time"

	"workclock-backend/internal/logger"
)

// RefreshEvent identifies what prompted a refresh.
type RefreshEvent string

const (
	// EventContextChanged fires when the active board changes.
	EventContextChanged RefreshEvent = "contextChanged"
	// EventFocusRegained fires when a client comes back to the foreground.
	EventFocusRegained RefreshEvent = "focusRegained"
	// EventTimerTick fires on the periodic refresh interval.
	EventTimerTick RefreshEvent = "timerTick"
)

// IsValid reports whether the event is one of the known triggers.
func (e RefreshEvent) IsValid() bool {
	switch e {
	case EventContextChanged, EventFocusRegained, EventTimerTick:
		return true
	}
	return false
}

// Refresher keeps the directory cache fresh. Events are handled
// synchronously: when Notify returns, the snapshot reflects the refresh, so
// a caller can re-read presence immediately.
type Refresher struct {
	presence *PresenceService
	boardID  string
	interval time.Duration
	log      *logger.Logger
}

// NewRefresher creates a new refresher for one board
func NewRefresher(presenceService *PresenceService, boardID string, interval time.Duration) *Refresher {
	return &Refresher{
		presence: presenceService,
		boardID:  boardID,
		interval: interval,
		log:      logger.WithComponent("refresher"),
	}
}

// Notify handles one refresh trigger synchronously.
func (r *Refresher) Notify(ctx context.Context, event RefreshEvent) error {
	count, err := r.presence.Sync(ctx, r.boardID)
	if err != nil {
		r.log.WithFields(map[string]interface{}{
			"event": string(event),
			"board": r.boardID,
			"error": err,
		}).Warn("Refresh failed")
		return err
	}
	r.log.WithFields(map[string]interface{}{
		"event":  string(event),
		"board":  r.boardID,
		"people": count,
	}).Debug("Refreshed directory snapshot")
	return nil
}

// Run emits timer ticks until the context is canceled. An interval of zero
// disables the loop.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.log.Info("Periodic refresh disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.Notify(ctx, EventTimerTick)
		}
	}
}
