package memory

import (
	"context"
	"sync"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions    map[model.SessionID]*model.GameSession
	grids       map[model.SessionID]*model.TileGrid
	recentWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.GameSession),
		grids:    make(map[model.SessionID]*model.TileGrid),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Tile grid operations

func (s *Storage) SaveGrid(ctx context.Context, grid *model.TileGrid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grids[grid.SessionID] = grid
	return nil
}

func (s *Storage) GetGrid(ctx context.Context, sessionID model.SessionID) (*model.TileGrid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grid, ok := s.grids[sessionID]
	if !ok {
		return nil, model.ErrGridNotFound
	}
	return grid, nil
}

func (s *Storage) DeleteGrid(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.grids, sessionID)
	return nil
}

// Recent word operations

func (s *Storage) PushRecentWord(ctx context.Context, word string, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentWords = append([]string{word}, s.recentWords...)
	if limit > 0 && len(s.recentWords) > limit {
		s.recentWords = s.recentWords[:limit]
	}
	return nil
}

func (s *Storage) GetRecentWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, len(s.recentWords))
	copy(words, s.recentWords)
	return words, nil
}
