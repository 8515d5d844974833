// Package common holds the error taxonomy shared by services and handlers.
// Handlers match these with errors.Is to pick a response status; services
// wrap storage errors into ErrPersistenceFailure so a lost conditional
// update is never mistaken for a player loss.
package common

import "errors"

// Settlement errors.
var (
	// ErrInvalidWager — wager is zero or negative. User-correctable.
	ErrInvalidWager = errors.New("wager must be positive")
	// ErrInsufficientFunds — wager exceeds the current balance.
	ErrInsufficientFunds = errors.New("not enough balance")
	// ErrInvalidInput — malformed reel data reached the evaluator. This is
	// an internal bug, not a user error.
	ErrInvalidInput = errors.New("invalid reel data")
	// ErrPersistenceFailure — storage unavailable or the commit lost a
	// race. The settlement was not applied; the caller may retry.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Bonus and deposit errors.
var (
	// ErrNotEligible — bonus denied: balance is non-zero or the grant cap
	// is reached. Expected outcome, not logged as an error.
	ErrNotEligible = errors.New("not eligible for bonus")
	// ErrInvalidAmount — deposit amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Auth errors.
var (
	ErrUnauthorized       = errors.New("user id not found in context")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already taken")
)
