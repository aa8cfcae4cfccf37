package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed   = errors.New("store is closed")
	ErrTableNotFound = errors.New("table not found")
	ErrIndexNotFound = errors.New("index not found")
)

// Record operation errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("record already exists")
	ErrInvalidID    = errors.New("invalid record ID")
	ErrValidation   = errors.New("invalid record data")
)

// ErrIO marks failures of the underlying storage engine (open failure,
// corrupt database, full disk). Callers test with errors.Is; the wrapped
// message carries the engine detail.
var ErrIO = errors.New("storage I/O failure")
