package repositories

import "errors"

// Sentinel errors returned by every repository implementation when a
// lookup key resolves to nothing. Handlers translate these into 404
// responses with errors.Is; everything else is treated as a storage
// failure.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
)
