package config

import "context"

// Loader is the interface for a format-specific study loader.
type Loader interface {
	// Load reads every study file under the given paths and merges them into
	// a single Study.
	Load(ctx context.Context, paths ...string) (*Study, error)
}
