package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "wof"

// puzzlesKey returns the Redis key for the ordered puzzle LIST
func puzzlesKey() string {
	return fmt.Sprintf("%s:puzzles", keyPrefix)
}

// rosterKey returns the Redis key for the ordered player name LIST
func rosterKey() string {
	return fmt.Sprintf("%s:roster", keyPrefix)
}
