package catalog

import "errors"

var (
	ErrCacheMiss    = errors.New("cache miss")
	ErrEmptyCatalog = errors.New("catalog file has no photographers")
)
