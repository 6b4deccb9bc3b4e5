package reveal

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mribera/penjat3d/internal/dependencies/random"
	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/storage"
)

// Service produces and stores the reveal schedule for a session's hidden
// image: a frozen permutation of the cover grid biased so tiles far from the
// center uncover first.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new reveal Service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// GenerateGrid builds a fresh size x size grid for the session, computes its
// reveal order and persists it, replacing any previous grid. Called exactly
// once per new hidden image.
func (s *Service) GenerateGrid(ctx context.Context, sessionID model.SessionID, size, generation int) (*model.TileGrid, error) {
	if size <= 0 || size%2 == 0 {
		return nil, model.ErrEvenGridSize
	}

	grid := model.NewTileGrid(sessionID, size, generation)
	grid.Order = s.orderTiles(grid.Tiles)

	if err := s.storage.SaveGrid(ctx, grid); err != nil {
		return nil, err
	}

	s.logger.Info("tile grid generated",
		slog.String("session_id", string(sessionID)),
		slog.Int("size", size),
		slog.Int("generation", generation),
	)

	return grid, nil
}

// orderTiles sorts tile ids descending by distance from center plus noise.
// The jitter is drawn fresh for each side of each comparison, so the result
// is a randomized ranking biased outward rather than a strict distance sort.
// The permutation is computed once here and frozen; queries never re-sort.
func (s *Service) orderTiles(tiles []model.Tile) []model.TileID {
	order := make([]model.TileID, len(tiles))
	byID := make(map[model.TileID]model.Tile, len(tiles))
	for i, t := range tiles {
		order[i] = t.ID
		byID[t.ID] = t
	}

	sort.Slice(order, func(i, j int) bool {
		si := byID[order[i]].DistanceFromCenter + s.random.Float64()*model.JitterMagnitude
		sj := byID[order[j]].DistanceFromCenter + s.random.Float64()*model.JitterMagnitude
		return si > sj
	})

	return order
}

// GetGrid retrieves the session's current grid
func (s *Service) GetGrid(ctx context.Context, sessionID model.SessionID) (*model.TileGrid, error) {
	return s.storage.GetGrid(ctx, sessionID)
}

// RevealedSet returns the tile ids revealed at the given count, in reveal
// order. Counts outside [0, N*N] are clamped.
func (s *Service) RevealedSet(ctx context.Context, sessionID model.SessionID, count int) ([]model.TileID, error) {
	grid, err := s.storage.GetGrid(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return grid.Revealed(count), nil
}

// RevealedCount maps session state to the number of tiles to show: a base
// amount plus a per-guess increment while playing, everything on a terminal
// outcome, nothing before the session starts.
func RevealedCount(session *model.GameSession, gridSize int) int {
	switch session.Status {
	case model.StatusPlaying:
		count := model.BaseReveal + session.TurnCount*model.PerTurnReveal
		if max := gridSize * gridSize; count > max {
			return max
		}
		return count
	case model.StatusWon, model.StatusLost:
		return gridSize * gridSize
	default:
		return 0
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	GenerateGrid(ctx context.Context, sessionID model.SessionID, size, generation int) (*model.TileGrid, error)
	GetGrid(ctx context.Context, sessionID model.SessionID) (*model.TileGrid, error)
	RevealedSet(ctx context.Context, sessionID model.SessionID, count int) ([]model.TileID, error)
}

var _ ServiceInterface = (*Service)(nil)
