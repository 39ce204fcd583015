package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/countdown/internal/calendar"
	"github.com/dmitrijs2005/countdown/internal/filex"
)

// Export writes the user's events to an .ics file at path.
func (a *App) Export(ctx context.Context, path string) error {
	list, err := a.events.List(ctx)
	if err != nil {
		return err
	}

	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return err
	}
	f, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("create %s: %w", abs, err)
	}

	if err := calendar.Export(f, list, time.Now()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", abs, err)
	}

	a.println(fmt.Sprintf("Exported %d event(s) to %s", len(list), abs))
	return nil
}

// Import adds every usable VEVENT of the .ics file at path as a new event.
func (a *App) Import(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	drafts, skipped, err := calendar.Import(f)
	if err != nil {
		return err
	}

	added := 0
	for _, d := range drafts {
		if _, err := a.events.Add(ctx, d.Title, d.Target); err != nil {
			a.logger.Warn(ctx, "skipping imported event", "uid", d.UID, "error", err)
			skipped++
			continue
		}
		added++
	}

	a.println(fmt.Sprintf("Imported %d event(s), skipped %d", added, skipped))
	return a.List(ctx)
}
