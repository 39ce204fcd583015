// Package services contains the account services of the countdown client:
// signup, login, logout and session restore over the local store, plus the
// password strength helper shown while signing up.
//
// Passwords are kept as argon2id verifiers (see internal/cryptox); the
// account model is otherwise a local lookup with no server involved.
package services
