// Package common defines shared sentinel errors and small helpers used
// across the countdown packages. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Input errors.
	ErrorValidation = errors.New("validation error")
)
