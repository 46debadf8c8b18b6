package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMatchData = errors.New("invalid match data")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPersistence      = errors.New("persistence failure")
	ErrMatchExists      = errors.New("match already exists")
	ErrNotFound         = errors.New("not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrSelfMerge        = errors.New("player cannot be merged into itself")
	ErrMergeCycle       = errors.New("merge target already points back to player")
)

// InvalidMatchDataError reports why a payload was rejected before any write.
type InvalidMatchDataError struct {
	Reason string
}

func NewInvalidMatchData(format string, args ...any) *InvalidMatchDataError {
	return &InvalidMatchDataError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidMatchDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidMatchData, e.Reason)
}

func (e *InvalidMatchDataError) Unwrap() error {
	return ErrInvalidMatchData
}
