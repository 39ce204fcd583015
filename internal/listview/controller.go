// Package listview turns the event list into rendered rows: it filters,
// sorts, tracks which rows are expanded, keeps countdowns fresh and plays
// an alert when a rendered countdown reaches zero.
//
// Every Controller method runs under one lock, so a mutation persists and
// re-renders before the next refresh sees the list.
package listview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/countdown/internal/alert"
	"github.com/dmitrijs2005/countdown/internal/common"
	"github.com/dmitrijs2005/countdown/internal/countdown"
	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/dmitrijs2005/countdown/internal/models"
	"github.com/dmitrijs2005/countdown/internal/timex"
)

// Source is the event storage the controller reads and edits.
type Source interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (models.Event, bool, error)
	Update(ctx context.Context, id, title string, target time.Time) (bool, error)
	Remove(ctx context.Context, id string) error
}

type Row struct {
	ID         string
	Title      string
	TargetTime time.Time
	Remaining  countdown.Breakdown
	Expanded   bool
}

type View struct {
	Rows  []Row
	Query string
	Sort  SortMode
	// Empty is set when no event survives the filter.
	Empty bool
}

// EditForm holds the values an edit starts from.
type EditForm struct {
	Title     string
	LocalTime string
}

type Controller struct {
	mu       sync.Mutex
	source   Source
	clock    countdown.Clock
	alerter  alert.Alerter
	loc      *time.Location
	logger   logging.Logger
	query    string
	sort     SortMode
	expanded map[string]bool
	tracker  *countdown.Tracker
	rows     []Row

	debouncer *Debouncer
	onSearch  func(View, error)

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Controller)

func WithClock(c countdown.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithAlerter(a alert.Alerter) Option {
	return func(ctl *Controller) { ctl.alerter = a }
}

// WithLocation sets the zone used for displayed and edited times.
func WithLocation(loc *time.Location) Option {
	return func(ctl *Controller) { ctl.loc = loc }
}

func WithLogger(l logging.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

func WithSort(m SortMode) Option {
	return func(ctl *Controller) { ctl.sort = m }
}

// WithSearchDebounce sets the quiet period for SearchDebounced.
func WithSearchDebounce(d time.Duration) Option {
	return func(ctl *Controller) { ctl.debouncer = NewDebouncer(d) }
}

// WithSearchCallback receives the view rendered by a debounced search.
func WithSearchCallback(fn func(View, error)) Option {
	return func(ctl *Controller) { ctl.onSearch = fn }
}

func NewController(src Source, opts ...Option) *Controller {
	c := &Controller{
		source:    src,
		clock:     countdown.SystemClock,
		alerter:   alert.Func(func() {}),
		loc:       time.Local,
		logger:    logging.Nop(),
		sort:      SortTimeAsc,
		expanded:  make(map[string]bool),
		tracker:   countdown.NewTracker(),
		debouncer: NewDebouncer(250 * time.Millisecond),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Render reads the full list and rebuilds the rows.
func (c *Controller) Render(ctx context.Context) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render(ctx)
}

// View returns the last rendered rows without reading storage.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) render(ctx context.Context) (View, error) {
	list, err := c.source.List(ctx)
	if err != nil {
		return c.snapshot(), fmt.Errorf("render list: %w", err)
	}

	ids := make(map[string]struct{}, len(list))
	for _, e := range list {
		ids[e.ID] = struct{}{}
	}
	c.tracker.Retain(ids)
	for id := range c.expanded {
		if _, ok := ids[id]; !ok {
			delete(c.expanded, id)
		}
	}

	list = filterEvents(list, c.query)
	sortEvents(list, c.sort)

	now := c.clock.Now()
	c.rows = make([]Row, 0, len(list))
	for _, e := range list {
		b := countdown.Compute(e.TargetTime, now)
		if !b.Elapsed {
			// re-arm rows whose target moved back into the future
			c.tracker.Observe(e.ID, b)
		}
		c.rows = append(c.rows, Row{
			ID:         e.ID,
			Title:      e.Title,
			TargetTime: e.TargetTime,
			Remaining:  b,
			Expanded:   c.expanded[e.ID],
		})
	}
	return c.snapshot(), nil
}

func (c *Controller) snapshot() View {
	rows := make([]Row, len(c.rows))
	copy(rows, c.rows)
	return View{Rows: rows, Query: c.query, Sort: c.sort, Empty: len(rows) == 0}
}

// Refresh recomputes the countdown of every rendered row at now and plays
// the alert for each row that has just reached zero. The list is read once
// per call. Rows whose event is gone are dropped.
func (c *Controller) Refresh(ctx context.Context, now time.Time) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.source.List(ctx)
	if err != nil {
		return c.snapshot(), fmt.Errorf("refresh list: %w", err)
	}
	byID := make(map[string]models.Event, len(list))
	for _, e := range list {
		byID[e.ID] = e
	}

	kept := make([]Row, 0, len(c.rows))
	for _, r := range c.rows {
		e, ok := byID[r.ID]
		if !ok {
			continue
		}
		r.Title = e.Title
		r.TargetTime = e.TargetTime
		r.Remaining = countdown.Compute(e.TargetTime, now)
		if c.tracker.Observe(r.ID, r.Remaining) {
			c.logger.Info(ctx, "countdown reached zero", "id", r.ID, "title", r.Title)
			c.alerter.PlayAlert()
		}
		kept = append(kept, r)
	}
	c.rows = kept
	return c.snapshot(), nil
}

// SetSearch applies q immediately.
func (c *Controller) SetSearch(ctx context.Context, q string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = strings.TrimSpace(q)
	return c.render(ctx)
}

// SearchDebounced applies q once no other search arrives within the
// debounce period. The result goes to the search callback.
func (c *Controller) SearchDebounced(q string) {
	c.debouncer.Trigger(func() {
		v, err := c.SetSearch(context.Background(), q)
		if c.onSearch != nil {
			c.onSearch(v, err)
		}
	})
}

func (c *Controller) SetSort(ctx context.Context, mode string) (View, error) {
	m, err := ParseSortMode(mode)
	if err != nil {
		return c.View(), err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sort = m
	return c.render(ctx)
}

// Toggle flips the expanded state of a rendered row.
func (c *Controller) Toggle(ctx context.Context, id string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.rendered(id) {
		return c.snapshot(), fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}
	if c.expanded[id] {
		delete(c.expanded, id)
	} else {
		c.expanded[id] = true
	}
	return c.render(ctx)
}

func (c *Controller) rendered(id string) bool {
	for _, r := range c.rows {
		if r.ID == id {
			return true
		}
	}
	return false
}

// EditForm seeds an edit of id with its current title and local time.
func (c *Controller) EditForm(ctx context.Context, id string) (EditForm, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok, err := c.source.Get(ctx, id)
	if err != nil {
		return EditForm{}, err
	}
	if !ok {
		return EditForm{}, fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}
	return EditForm{Title: e.Title, LocalTime: timex.ToLocalInput(e.TargetTime, c.loc)}, nil
}

// SubmitEdit validates the form values, stores them and re-renders.
func (c *Controller) SubmitEdit(ctx context.Context, id, title, localTime string) (View, error) {
	target, err := timex.Parse(localTime, c.loc)
	if err != nil {
		target = time.Time{}
	}
	title, err = events.Validate(title, target)
	if err != nil {
		return c.View(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ok, err := c.source.Update(ctx, id, title, target)
	if err != nil {
		return c.snapshot(), err
	}
	if !ok {
		return c.snapshot(), fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}
	return c.render(ctx)
}

// Delete removes id and forgets its row state.
func (c *Controller) Delete(ctx context.Context, id string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.source.Remove(ctx, id); err != nil {
		return c.snapshot(), err
	}
	c.tracker.Forget(id)
	delete(c.expanded, id)
	return c.render(ctx)
}

// Link returns the shareable address of id.
func (c *Controller) Link(id string) string {
	return events.Link(id)
}

// Location is the zone used for display and edits.
func (c *Controller) Location() *time.Location {
	return c.loc
}

// Start runs Refresh every interval until ctx is done or Stop is called,
// passing each result to onRefresh. A running loop is replaced.
func (c *Controller) Start(ctx context.Context, interval time.Duration, onRefresh func(View, error)) {
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.loopMu.Lock()
	c.cancel = cancel
	c.done = done
	c.loopMu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				v, err := c.Refresh(ctx, c.clock.Now())
				if onRefresh != nil {
					onRefresh(v, err)
				}
			}
		}
	}()
}

// Stop ends the refresh loop and any pending debounced search, and waits
// for the loop to exit.
func (c *Controller) Stop() {
	c.debouncer.Cancel()

	c.loopMu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.loopMu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
