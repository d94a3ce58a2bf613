package redis

import (
	"fmt"

	"github.com/pmorrell/blockfall/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "blockfall"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// profileKey returns the Redis key for a Profile
func profileKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, playerID)
}

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id model.SessionID) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// summariesForPlayerIndexKey returns the Redis key for the SET of summaries
// recorded for a player
func summariesForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:summaries_for_player:%s", keyPrefix, playerID)
}

// leaderboardKey returns the Redis key for the high-score sorted set
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// leaderboardEntriesKey returns the Redis key for the hash of full
// leaderboard entries, keyed by player id
func leaderboardEntriesKey() string {
	return fmt.Sprintf("%s:leaderboard:entries", keyPrefix)
}
