package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFinished = errors.New("session is already finished")

	// Score errors
	ErrSummaryNotFound = errors.New("game summary not found")
)
