package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/parking-lot-navigator/lot/engine"
)

// parkingServiceImpl implements the ParkingService interface. The mutex
// serializes every grid access, so the single-owner lot state never sees
// concurrent entry even when transports call in from multiple goroutines.
type parkingServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewParkingService creates a new parking service instance
func NewParkingService(sessions SessionManager, configs ConfigManager) ParkingService {
	return &parkingServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *parkingServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new lot session
func (s *parkingServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.LotConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		LotState:       session.Engine.GetState(),
		LotConfig:      session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *parkingServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		LotState:       session.Engine.GetState(),
		LotConfig:      session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *parkingServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			LotState:       sess.Engine.GetState(),
			LotConfig:      sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *parkingServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Reserve attempts to reserve the spot at (row,col) for a session.
// Reservation failures are expected user-facing outcomes: they come back as
// a result with Success=false, not as an error.
func (s *parkingServiceImpl) Reserve(ctx context.Context, sessionID string, row, col int) (*ReserveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	spot := engine.Position{Row: row, Col: col}
	reserveErr := sess.Engine.Reserve(spot)
	state := sess.Engine.GetState()

	result := &ReserveResult{
		Success:  reserveErr == nil,
		Outcome:  OutcomeReserved,
		Spot:     spot,
		LotState: state,
		Message:  state.Message,
	}

	switch {
	case reserveErr == nil:
		result.Events = append(result.Events, LotEvent{
			Type:      "reserve",
			Message:   state.Message,
			Timestamp: time.Now(),
			Position:  &spot,
		})
	case errors.Is(reserveErr, engine.ErrInvalidCoordinate):
		result.Outcome = OutcomeInvalidCoordinate
	case errors.Is(reserveErr, engine.ErrSpotUnavailable):
		result.Outcome = OutcomeSpotUnavailable
	default:
		return nil, reserveErr
	}

	return result, nil
}

// NavigateToReserved routes from the vehicle entrance to the reserved spot
func (s *parkingServiceImpl) NavigateToReserved(ctx context.Context, sessionID string) (*NavigateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	path, navErr := sess.Engine.NavigateToReserved()
	state := sess.Engine.GetState()

	result := &NavigateResult{
		Success:    navErr == nil,
		Outcome:    OutcomeOK,
		LotState:   state,
		Message:    state.Message,
		Path:       path,
		PathLength: len(path),
	}

	switch {
	case navErr == nil:
		goal := state.ReservedSpot
		result.Goal = &goal
		result.Events = append(result.Events, LotEvent{
			Type:      "path_found",
			Message:   state.Message,
			Timestamp: time.Now(),
			Position:  &goal,
		})
	case errors.Is(navErr, engine.ErrNoActiveReservation):
		result.Outcome = OutcomeNoReservation
	case errors.Is(navErr, engine.ErrNoPathFound):
		result.Outcome = OutcomeNoPath
	default:
		return nil, navErr
	}

	return result, nil
}

// NavigateToNearestSpot finds the nearest free spot to the pedestrian
// entrance and routes to it from the vehicle entrance
func (s *parkingServiceImpl) NavigateToNearestSpot(ctx context.Context, sessionID string) (*NavigateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	spot, path, navErr := sess.Engine.NavigateToNearestSpot()
	state := sess.Engine.GetState()

	result := &NavigateResult{
		Success:    navErr == nil,
		Outcome:    OutcomeOK,
		LotState:   state,
		Message:    state.Message,
		Path:       path,
		PathLength: len(path),
	}

	switch {
	case navErr == nil:
		goal := spot
		result.Goal = &goal
		result.Events = append(result.Events, LotEvent{
			Type:      "path_found",
			Message:   state.Message,
			Timestamp: time.Now(),
			Position:  &goal,
		})
	case errors.Is(navErr, engine.ErrLotFull):
		result.Outcome = OutcomeLotFull
		result.Events = append(result.Events, LotEvent{
			Type:      "lot_full",
			Message:   state.Message,
			Timestamp: time.Now(),
		})
	case errors.Is(navErr, engine.ErrNoPathFound):
		result.Outcome = OutcomeNoPath
	default:
		return nil, navErr
	}

	return result, nil
}

// Reset redraws the lot for a session
func (s *parkingServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.LotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.Reset(), nil
}

// GetLotState returns the current lot state for a session
func (s *parkingServiceImpl) GetLotState(ctx context.Context, sessionID string) (*engine.LotState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return sess.Engine.GetState(), nil
}

// GetActionHistory returns paginated action history for a session
func (s *parkingServiceImpl) GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	history := sess.Engine.GetActionHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 20
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	ordered := make([]engine.ActionHistoryEntry, total)
	copy(ordered, history)
	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Actions:      ordered[start:end],
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListConfigs returns information about all available configurations
func (s *parkingServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a lot configuration by name
func (s *parkingServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.LotConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig persists a lot configuration
func (s *parkingServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.LotConfig) error {
	return s.configs.SaveConfig(configName, config)
}
