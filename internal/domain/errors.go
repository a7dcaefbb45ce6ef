package domain

import "errors"

// Common errors
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidDay      = errors.New("invalid weekday key")
	ErrMalformedRecord = errors.New("stored record is malformed")
	ErrExerciseIndex   = errors.New("exercise index out of range")
	ErrSetIndex        = errors.New("set index out of range")
	ErrEmptyName       = errors.New("exercise name must not be empty")
)
