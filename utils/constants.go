package utils

// Redis key prefixes.
const (
	// AuthCachePrefix keys auth-gate entries:
	// prefix + namespace + ":" + principalID + ":" + tokenHash.
	AuthCachePrefix = "authcache:"
)

// RelayChannel is the Redis pub/sub channel bridging notification relays
// across instances.
const RelayChannel = "autocare:notify"
