package redis

import "fmt"

// Key prefix for all club data
const keyPrefix = "clubdesk"

// collectionKey returns the Redis key holding a serialized collection blob
func collectionKey(name string) string {
	return fmt.Sprintf("%s:collection:%s", keyPrefix, name)
}

// kiliSeqKey returns the Redis key for the player display-id sequence
func kiliSeqKey() string {
	return fmt.Sprintf("%s:seq:kili", keyPrefix)
}

// Collection names
const (
	collectionPlayers   = "players"
	collectionPayments  = "payments"
	collectionLocations = "locations"
	collectionRoles     = "roles"
)
