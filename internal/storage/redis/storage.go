package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.GuessedLetters == nil {
		session.GuessedLetters = make(map[rune]bool)
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// Tile grid operations

func (s *Storage) SaveGrid(ctx context.Context, grid *model.TileGrid) error {
	data, err := json.Marshal(grid)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gridKey(grid.SessionID), data, s.cfg.GridTTL).Err()
}

func (s *Storage) GetGrid(ctx context.Context, sessionID model.SessionID) (*model.TileGrid, error) {
	data, err := s.client.Get(ctx, gridKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGridNotFound
		}
		return nil, err
	}

	var grid model.TileGrid
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, err
	}
	return &grid, nil
}

func (s *Storage) DeleteGrid(ctx context.Context, sessionID model.SessionID) error {
	return s.client.Del(ctx, gridKey(sessionID)).Err()
}

// Recent word operations

func (s *Storage) PushRecentWord(ctx context.Context, word string, limit int) error {
	key := recentWordsKey()
	if err := s.client.LPush(ctx, key, word).Err(); err != nil {
		return err
	}
	if limit > 0 {
		if err := s.client.LTrim(ctx, key, 0, int64(limit-1)).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) GetRecentWords(ctx context.Context) ([]string, error) {
	words, err := s.client.LRange(ctx, recentWordsKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return words, nil
}
