package service

import (
	"context"
	"time"

	"github.com/wricardo/parking-lot-navigator/lot/engine"
)

// ParkingService defines all parking-lot-related operations
type ParkingService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Lot Operations
	Reserve(ctx context.Context, sessionID string, row, col int) (*ReserveResult, error)
	NavigateToReserved(ctx context.Context, sessionID string) (*NavigateResult, error)
	NavigateToNearestSpot(ctx context.Context, sessionID string) (*NavigateResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.LotState, error)

	// Lot State
	GetLotState(ctx context.Context, sessionID string) (*engine.LotState, error)
	GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.LotConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.LotConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.LotConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.LotConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles lot configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.LotConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.LotConfig
	SaveConfig(name string, config *engine.LotConfig) error
}

// Session represents an active lot session
type Session struct {
	ID             string
	Engine         *engine.LotEngine
	Config         *engine.LotConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
