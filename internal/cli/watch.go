package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/countdown/internal/alert"
	"github.com/dmitrijs2005/countdown/internal/common"
	"github.com/dmitrijs2005/countdown/internal/countdown"
	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/listview"
	"github.com/dmitrijs2005/countdown/internal/timex"
)

// clearSearch typed during watch removes the filter.
const clearSearch = "*"

// Watch redraws the list every refresh interval until an empty line is
// entered. Other lines typed meanwhile become a debounced search.
func (a *App) Watch(ctx context.Context) error {
	v, err := a.view.Render(ctx)
	if err != nil {
		return err
	}

	a.setWatching(true)
	defer a.setWatching(false)
	a.draw(v, true)

	a.view.Start(ctx, a.config.RefreshInterval, func(v listview.View, err error) {
		if err != nil {
			a.logger.Error(ctx, "refresh failed", "error", err)
			return
		}
		a.draw(v, true)
	})
	defer a.view.Stop()

	for {
		line, err := readLine(a.reader)
		if err != nil || line == "" {
			return nil
		}
		if line == clearSearch {
			line = ""
		}
		a.view.SearchDebounced(line)
	}
}

func (a *App) setWatching(on bool) {
	a.outMu.Lock()
	a.watching = on
	a.outMu.Unlock()
}

// Open shows a focused countdown for one event, addressed by id or link,
// until the event is reached or Enter is pressed.
func (a *App) Open(ctx context.Context, ref string) error {
	id, ok := events.ParseLink(ref)
	if !ok {
		return fmt.Errorf("link %q: %w", ref, common.ErrorNotFound)
	}
	e, found, err := a.events.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	a.println(fmt.Sprintf("%s at %s (press Enter to return)", e.Title, timex.Display(e.TargetTime, a.loc)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	enter := make(chan struct{})
	go func() {
		defer close(enter)
		_, _ = readLine(a.reader)
		cancel()
	}()

	err = countdown.Follow(ctx, e.TargetTime, a.config.RefreshInterval, countdown.SystemClock,
		func(b countdown.Breakdown) {
			a.outMu.Lock()
			fmt.Fprintf(a.out, "\r%-40s", b.String())
			a.outMu.Unlock()
		}, alert.Func(func() {
			a.logger.Info(ctx, "countdown reached zero", "id", e.ID, "title", e.Title)
			a.bell.PlayAlert()
		}))
	a.println()
	if err == nil {
		a.println(fmt.Sprintf("%s has arrived!", e.Title))
	}

	<-enter
	return nil
}
