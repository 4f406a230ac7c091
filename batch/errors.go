package batch

import "errors"

var (
	ErrPassMismatch       = errors.New("batch: pass count mismatch")
	ErrBadSampleBudget    = errors.New("batch: sample budget must be positive")
	ErrSampleSizeMismatch = errors.New("batch: sample table row count mismatch")
)
