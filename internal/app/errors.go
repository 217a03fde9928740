package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNoJobsFound     = errors.New("no jobs found")
	ErrInvalidArgument = errors.New("invalid argument")
)
