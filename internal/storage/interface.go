package storage

import (
	"context"

	"github.com/mribera/penjat3d/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Tile grid operations (one grid per session image)
	SaveGrid(ctx context.Context, grid *model.TileGrid) error
	GetGrid(ctx context.Context, sessionID model.SessionID) (*model.TileGrid, error)
	DeleteGrid(ctx context.Context, sessionID model.SessionID) error

	// Recent word operations (exclusion list fed back to the provider)
	PushRecentWord(ctx context.Context, word string, limit int) error
	GetRecentWords(ctx context.Context) ([]string, error)
}
