// Package cli provides the interactive countdown command-line client.
//
// It wires configuration, local storage, the auth service, the event
// repository and the list view into a REPL. Typical flow: restore the
// session left by the previous run (or sign up / log in), list events,
// watch live countdowns, edit or delete events.
//
// Key features:
//   - Signup / Login / Logout with a persisted session
//   - Add, edit (seeded with current values) and delete (confirmed) events
//   - List with search and sort, expanding rows for detail and links
//   - Watch: live refresh with a bell when a countdown reaches zero
//   - Open: focused countdown for one event, by id or "#event=<id>" link
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
