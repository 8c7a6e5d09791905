package domain

import "errors"

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrRateLimited        = errors.New("rate limited")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrUnknownResultLabel = errors.New("unknown result label")
)
