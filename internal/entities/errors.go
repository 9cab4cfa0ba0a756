// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnauthorized covers missing sessions and ownership mismatches alike.
	// The caller cannot distinguish "not found" from "not yours".
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamNotFound signals missing team. Internal only; the delivery layer
	// reports it as ErrUnauthorized.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserExists signals username conflict on registration.
	ErrUserExists = errors.New("user exists")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials signals a failed login attempt.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrSpeciesNotFound signals a failed species lookup.
	ErrSpeciesNotFound = errors.New("species not found")
	// ErrTeamFull signals a roster already holding six entries.
	ErrTeamFull = errors.New("team full")
	// ErrDuplicateSpecies signals a species already present in the roster.
	ErrDuplicateSpecies = errors.New("duplicate species")
)
