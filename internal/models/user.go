// Package models defines the domain records persisted by the countdown store.
package models

import "strings"

// User is one registered account together with its events.
type User struct {
	Name string
	// Email is the registry key: lowercased and trimmed.
	Email string
	// PasswordHash is an encoded verifier produced by cryptox.HashPassword.
	PasswordHash string
	// Events is kept in insertion order.
	Events []Event
}

// Registry maps a normalized email to its user record.
type Registry map[string]*User

// NormalizeEmail lowercases and trims an email for use as a registry key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Lookup returns the record for email, normalizing it first.
func (r Registry) Lookup(email string) (*User, bool) {
	u, ok := r[NormalizeEmail(email)]
	return u, ok && u != nil
}
