package interfaces

import "context"

// Cache represents cache for storing contents with an expiry.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// ReadValue returns the value stored under key.
	// Returns:
	// 1) (item, nil) when the key holds a decodable value;
	// 2) (zero, entity_not_found) when the key is absent, expired or holds an undecodable value;
	// 3) (zero, internal_server_error) when the storage read fails.
	ReadValue(ctx context.Context, key string) (T, error)

	// WriteValue writes value in cache with the given TTL (ms).
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// DeleteValue deletes the value for the given key from the cache.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
