package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workclock-backend/internal/config"
	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/logger"
)

// BoardDirectory lists assigned people from the board HTTP API.
type BoardDirectory struct {
	cfg        *config.Config
	httpClient *http.Client
	log        *logger.Logger
}

// NewBoardDirectory creates a new board-backed directory
func NewBoardDirectory(cfg *config.Config) *BoardDirectory {
	return &BoardDirectory{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.WithComponent("board-directory"),
	}
}

// ListAssignedPeople fetches the member list for a board. Malformed entries
// in the payload are skipped and logged; only a transport or top-level
// decoding failure is an error.
func (s *BoardDirectory) ListAssignedPeople(ctx context.Context, boardID string) ([]DirectoryPerson, error) {
	if boardID == "" {
		return nil, apperrors.ErrBoardNotFound
	}

	base := s.cfg.BoardAPIBaseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid board API URL '%s': %w", base, err)
	}

	endpoint := fmt.Sprintf("%s/boards/%s/members", baseURL.String(), url.PathEscape(boardID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create board members request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.BoardAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.BoardAPIToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("board members request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrBoardNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("board members fetch failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var rawItems []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rawItems); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDirectoryPayload, err)
	}

	people := make([]DirectoryPerson, 0, len(rawItems))
	for i, raw := range rawItems {
		var p DirectoryPerson
		if err := json.Unmarshal(raw, &p); err != nil || p.ID == "" {
			s.log.WithFields(map[string]interface{}{
				"board": boardID,
				"index": i,
			}).Warn("Skipping malformed directory entry")
			continue
		}
		people = append(people, p)
	}

	return people, nil
}
