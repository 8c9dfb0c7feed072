package domain

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid phase status")
	ErrInvalidPriority = errors.New("invalid task priority")
)
