package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidPaymentType = errors.New("invalid payment type")
	ErrPlayerRequired     = errors.New("player payments require a player id")
	ErrNotesTooLong       = errors.New("notes exceed maximum length")
	ErrZeroAmount         = errors.New("payment amount must be non-zero")

	// Location errors
	ErrLocationNotFound = errors.New("location not found")

	// Role errors
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleNameExists    = errors.New("role name already exists")
	ErrDefaultRoleLocked = errors.New("default roles cannot be modified or deleted")
)
