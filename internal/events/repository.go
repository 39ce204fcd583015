// Package events is the event repository: CRUD over the logged-in user's
// event list.
//
// Every operation is scoped to the Session given to NewRepository. With no
// active session, or a session whose account no longer exists, reads return
// nothing and writes do nothing; neither is an error.
package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/dmitrijs2005/countdown/internal/models"
	"github.com/dmitrijs2005/countdown/internal/session"
	"github.com/dmitrijs2005/countdown/internal/store"
	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidTarget = errors.New("a valid target time is required")
)

type Repository struct {
	store   *store.Store
	session *session.Session
	logger  logging.Logger
	newID   func() string
}

func NewRepository(st *store.Store, sess *session.Session, logger logging.Logger) *Repository {
	return &Repository{store: st, session: sess, logger: logger, newID: uuid.NewString}
}

// Validate checks the add/update preconditions and returns the trimmed title.
func Validate(title string, target time.Time) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if target.IsZero() {
		return "", ErrInvalidTarget
	}
	return title, nil
}

// List returns the user's events in insertion order.
func (r *Repository) List(ctx context.Context) ([]models.Event, error) {
	email := r.session.Email()
	if email == "" {
		return nil, nil
	}
	reg, err := r.store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	u, ok := reg.Lookup(email)
	if !ok {
		return nil, nil
	}
	out := make([]models.Event, len(u.Events))
	copy(out, u.Events)
	return out, nil
}

// Get returns the event with id.
func (r *Repository) Get(ctx context.Context, id string) (models.Event, bool, error) {
	list, err := r.List(ctx)
	if err != nil {
		return models.Event{}, false, err
	}
	if i := models.IndexOf(list, id); i >= 0 {
		return list[i], true, nil
	}
	return models.Event{}, false, nil
}

// Add appends a new event and returns its id. It returns "" when no
// session is active.
func (r *Repository) Add(ctx context.Context, title string, target time.Time) (string, error) {
	title, err := Validate(title, target)
	if err != nil {
		return "", err
	}

	var id string
	err = r.mutate(ctx, func(u *models.User) bool {
		id = r.freshID(u.Events)
		u.Events = append(u.Events, models.Event{ID: id, Title: title, TargetTime: target})
		return true
	})
	if err != nil {
		return "", fmt.Errorf("add event: %w", err)
	}
	if id != "" {
		r.logger.Debug(ctx, "event added", "id", id, "user", r.session.Email())
	}
	return id, nil
}

// Update replaces the title and target of the event with id in place.
// It reports false, changing nothing, when id is absent.
func (r *Repository) Update(ctx context.Context, id, title string, target time.Time) (bool, error) {
	title, err := Validate(title, target)
	if err != nil {
		return false, err
	}

	found := false
	err = r.mutate(ctx, func(u *models.User) bool {
		i := models.IndexOf(u.Events, id)
		if i < 0 {
			return false
		}
		u.Events[i].Title = title
		u.Events[i].TargetTime = target
		found = true
		return true
	})
	if err != nil {
		return false, fmt.Errorf("update event: %w", err)
	}
	return found, nil
}

// Remove deletes the event with id. Absent ids are ignored.
func (r *Repository) Remove(ctx context.Context, id string) error {
	err := r.mutate(ctx, func(u *models.User) bool {
		i := models.IndexOf(u.Events, id)
		if i < 0 {
			return false
		}
		u.Events = append(u.Events[:i], u.Events[i+1:]...)
		return true
	})
	if err != nil {
		return fmt.Errorf("remove event: %w", err)
	}
	return nil
}

// mutate runs fn on the session user's record inside one transaction and
// saves the registry when fn reports a change.
func (r *Repository) mutate(ctx context.Context, fn func(u *models.User) bool) error {
	email := r.session.Email()
	if email == "" {
		return nil
	}
	return r.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		reg, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		u, ok := reg.Lookup(email)
		if !ok {
			return nil
		}
		if !fn(u) {
			return nil
		}
		return tx.SaveUsers(ctx, reg)
	})
}

func (r *Repository) freshID(existing []models.Event) string {
	for {
		id := r.newID()
		if models.IndexOf(existing, id) < 0 {
			return id
		}
	}
}
