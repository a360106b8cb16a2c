package umatrix

import "errors"

var (
	// ErrNilGrid indicates Build was called without a grid.
	ErrNilGrid = errors.New("umatrix: grid is nil")
	// ErrUnknownStatistic indicates a node statistic name other than "average" or "max".
	ErrUnknownStatistic = errors.New("umatrix: unknown node statistic")
)
