package config

import "errors"

// Sentinel errors.
var (
	ErrUnknownTargetType = errors.New("unknown target type")
	ErrInvalidTarget     = errors.New("invalid target")
)
