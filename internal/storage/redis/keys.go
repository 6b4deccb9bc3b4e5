package redis

import (
	"fmt"

	"github.com/mribera/penjat3d/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "penjat"

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// gridKey returns the Redis key for a session's TileGrid
func gridKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:grid:%s", keyPrefix, sessionID)
}

// recentWordsKey returns the Redis key for the recent-word LIST
func recentWordsKey() string {
	return fmt.Sprintf("%s:recent_words", keyPrefix)
}
