// Package store persists the user registry and the session pointer in the
// local key/value storage.
//
// Two keys are used:
//
//	users        JSON object: lowercased email -> user record with events
//	currentUser  lowercased email of the logged-in user, absent when logged out
//
// Every read of "users" goes through a validating decoder; see Users.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/countdown/internal/dbx"
	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/dmitrijs2005/countdown/internal/models"
	"github.com/dmitrijs2005/countdown/internal/repositories/kvstore"
)

const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)

var ErrCorrupt = errors.New("stored users record is corrupt")

type Store struct {
	db     *sql.DB
	kv     kvstore.Repository
	loc    *time.Location
	logger logging.Logger
}

type Option func(*Store)

// WithLocation sets the zone used to read legacy zone-less timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store over db. WithTx runs in real transactions.
func New(db *sql.DB, opts ...Option) *Store {
	s := newStore(kvstore.NewSQLiteRepository(db), opts)
	s.db = db
	return s
}

// NewWithRepository returns a Store over an arbitrary key/value repository.
// WithTx on such a store runs fn directly, without a transaction.
func NewWithRepository(kv kvstore.Repository, opts ...Option) *Store {
	return newStore(kv, opts)
}

func newStore(kv kvstore.Repository, opts []Option) *Store {
	s := &Store{kv: kv, loc: time.Local, logger: logging.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Users loads and validates the registry. An absent key is an empty
// registry. Records that fail validation are dropped and logged.
func (s *Store) Users(ctx context.Context) (models.Registry, error) {
	data, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	reg, report, err := decodeUsers(data, s.loc)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !report.clean() {
		s.logger.Warn(ctx, "users record repaired on load",
			"dropped_users", report.DroppedUsers,
			"dropped_events", report.DroppedEvents,
			"migrated_users", report.MigratedUsers)
	}
	return reg, nil
}

func (s *Store) SaveUsers(ctx context.Context, reg models.Registry) error {
	data, err := encodeUsers(reg)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUsers, data); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// CurrentUser returns the stored session email, or "" when there is none.
func (s *Store) CurrentUser(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return "", fmt.Errorf("load current user: %w", err)
	}
	return models.NormalizeEmail(string(v)), nil
}

// SetCurrentUser stores the session email; "" removes the key.
func (s *Store) SetCurrentUser(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	var err error
	if email == "" {
		err = s.kv.Delete(ctx, KeyCurrentUser)
	} else {
		err = s.kv.Set(ctx, KeyCurrentUser, []byte(email))
	}
	if err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	return nil
}

// WithTx runs fn with a Store whose reads and writes share one transaction.
// Nested calls reuse the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &Store{
			kv:     kvstore.NewSQLiteRepository(tx),
			loc:    s.loc,
			logger: s.logger,
		})
	})
}
