package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/countdown/internal/alert"
	"github.com/dmitrijs2005/countdown/internal/config"
	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/listview"
	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/dmitrijs2005/countdown/internal/services"
	"github.com/dmitrijs2005/countdown/internal/session"
	"github.com/dmitrijs2005/countdown/internal/store"
	"github.com/dmitrijs2005/countdown/internal/timex"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	logger      logging.Logger
	loc         *time.Location
	session     *session.Session
	authService services.AuthService
	events      *events.Repository
	view        *listview.Controller
	renderer    listview.TextRenderer
	bell        alert.Alerter
	reader      *bufio.Reader

	outMu sync.Mutex
	out   io.Writer
	// watching is set while the live view owns the screen.
	watching bool
}

// NewApp opens the database named in c and wires the services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	loc, err := timex.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	sortMode, err := listview.ParseSortMode(c.DefaultSort)
	if err != nil {
		return nil, err
	}

	db, err := store.OpenDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	return newApp(db, c, loc, sortMode, logger, os.Stdin, os.Stdout), nil
}

func newApp(db *sql.DB, c *config.Config, loc *time.Location, sortMode listview.SortMode,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	st := store.New(db, store.WithLocation(loc), store.WithLogger(logger))
	sess := session.New()

	a := &App{
		config:      c,
		db:          db,
		logger:      logger,
		loc:         loc,
		session:     sess,
		authService: services.NewAuthService(st, sess, logger),
		events:      events.NewRepository(st, sess, logger),
		renderer:    listview.TextRenderer{Loc: loc},
		bell:        alert.NewBell(out, c.Bell, logger),
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.view = listview.NewController(a.events,
		listview.WithAlerter(a.bell),
		listview.WithLocation(loc),
		listview.WithLogger(logger),
		listview.WithSort(sortMode),
		listview.WithSearchDebounce(c.SearchDebounce),
		listview.WithSearchCallback(a.onSearch),
	)
	return a
}

// Run restores the previous session, opens the startup event if one was
// requested, and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to countdown (type 'help' for commands)")

	ok, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to restore session", "error", err)
	}
	if ok {
		a.println(fmt.Sprintf("Logged in as %s", a.session.Email()))
	}

	if a.config.OpenEvent != "" {
		if a.isLoggedIn() {
			report(a.Open(ctx, a.config.OpenEvent))
		} else {
			a.println("Log in to open the requested event.")
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops background work and closes the database.
func (a *App) Close() {
	a.view.Stop()
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "failed to close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) getStatus() string {
	if email := a.session.Email(); email != "" {
		return fmt.Sprintf(" (%s)", email)
	}
	return ""
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

// draw renders v. clear wipes the terminal first, for the live view.
func (a *App) draw(v listview.View, clear bool) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if clear {
		fmt.Fprint(a.out, "\033[H\033[2J")
	}
	a.renderer.Render(a.out, v)
	if clear {
		fmt.Fprintln(a.out, "Type to search, '*' clears the filter, Enter on an empty line stops.")
	}
}

func (a *App) onSearch(v listview.View, err error) {
	if err != nil {
		a.logger.Error(context.Background(), "search failed", "error", err)
		return
	}
	a.outMu.Lock()
	watching := a.watching
	a.outMu.Unlock()
	a.draw(v, watching)
}
