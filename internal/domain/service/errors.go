package service

import "errors"

// ErrCacheMiss is returned by MenuCache when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ErrSessionNotFound is returned by SessionStore when the user has no
// active session.
var ErrSessionNotFound = errors.New("session not found")
