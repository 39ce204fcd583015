package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/countdown/internal/cryptox"
	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/dmitrijs2005/countdown/internal/models"
	"github.com/dmitrijs2005/countdown/internal/session"
	"github.com/dmitrijs2005/countdown/internal/store"
)

var (
	ErrMissingFields = errors.New("please fill all fields")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("no account with this email")
	ErrWrongPassword = errors.New("incorrect password")
)

// AuthService manages accounts and the session pointer.
//
// Contract:
//   - Signup: create an account and log it in.
//   - Login: check credentials and set the session.
//   - Logout: clear the session.
//   - Restore: pick up a session persisted by an earlier run.
//   - CurrentUser: the record behind the session, nil when logged out.
type AuthService interface {
	Signup(ctx context.Context, name, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	store   *store.Store
	session *session.Session
	logger  logging.Logger
}

func NewAuthService(st *store.Store, sess *session.Session, logger logging.Logger) AuthService {
	return &authService{store: st, session: sess, logger: logger}
}

// Signup registers name/email/password. The registry write and the
// session pointer are stored in one transaction.
func (a *authService) Signup(ctx context.Context, name, email string, password []byte) error {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)
	if name == "" || email == "" || len(password) == 0 {
		return ErrMissingFields
	}

	err := a.store.WithTx(ctx, func(ctx context.Context, tx *store.Store) error {
		reg, err := tx.Users(ctx)
		if err != nil {
			return err
		}
		if _, exists := reg.Lookup(email); exists {
			return ErrEmailTaken
		}
		reg[email] = &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: cryptox.HashPassword(password),
			Events:       []models.Event{},
		}
		if err := tx.SaveUsers(ctx, reg); err != nil {
			return err
		}
		return tx.SetCurrentUser(ctx, email)
	})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	a.session.Set(email)
	a.logger.Info(ctx, "account created", "user", email)
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = models.NormalizeEmail(email)
	if email == "" || len(password) == 0 {
		return ErrMissingFields
	}

	reg, err := a.store.Users(ctx)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	u, ok := reg.Lookup(email)
	if !ok {
		return ErrUnknownEmail
	}

	match, err := cryptox.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		a.logger.Warn(ctx, "stored password verifier unreadable", "user", email, "error", err)
		return ErrWrongPassword
	}
	if !match {
		return ErrWrongPassword
	}

	if err := a.store.SetCurrentUser(ctx, email); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.session.Set(email)
	a.logger.Info(ctx, "logged in", "user", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.SetCurrentUser(ctx, ""); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.session.Clear()
	return nil
}

// Restore loads the persisted session pointer. A pointer to a user that no
// longer exists is removed and reported as logged out.
func (a *authService) Restore(ctx context.Context) (bool, error) {
	email, err := a.store.CurrentUser(ctx)
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}
	if email == "" {
		a.session.Clear()
		return false, nil
	}

	reg, err := a.store.Users(ctx)
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}
	if _, ok := reg.Lookup(email); !ok {
		a.logger.Warn(ctx, "session points at a missing account", "user", email)
		a.session.Clear()
		if err := a.store.SetCurrentUser(ctx, ""); err != nil {
			return false, fmt.Errorf("restore session: %w", err)
		}
		return false, nil
	}

	a.session.Set(email)
	return true, nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	email := a.session.Email()
	if email == "" {
		return nil, nil
	}
	reg, err := a.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := reg.Lookup(email)
	if !ok {
		return nil, nil
	}
	return u, nil
}
