package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/countdown/internal/common"
	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/timex"
)

// getConfirm is a test seam for Confirm.
var getConfirm = Confirm

const targetPrompt = "Enter target time (YYYY-MM-DDTHH:MM)"

// Add prompts for a title and target time and stores a new event.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter event title", a.out)
	if err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, targetPrompt, a.out)
	if err != nil {
		return err
	}
	target, err := timex.Parse(raw, a.loc)
	if err != nil {
		return events.ErrInvalidTarget
	}

	id, err := a.events.Add(ctx, title, target)
	if err != nil {
		return err
	}
	if id == "" {
		return common.ErrorUnauthorized
	}

	a.println(fmt.Sprintf("Event saved: %s (link %s)", id, events.Link(id)))

	open, err := getConfirm(a.reader, "Open a live countdown now?", a.out)
	if err != nil {
		return err
	}
	if open {
		return a.Open(ctx, id)
	}
	return a.List(ctx)
}

func (a *App) List(ctx context.Context) error {
	v, err := a.view.Render(ctx)
	if err != nil {
		return err
	}
	a.draw(v, false)
	return nil
}

// Search filters the list by title; an empty query clears the filter.
func (a *App) Search(ctx context.Context, query string) error {
	v, err := a.view.SetSearch(ctx, query)
	if err != nil {
		return err
	}
	a.draw(v, false)
	return nil
}

func (a *App) Sort(ctx context.Context, mode string) error {
	v, err := a.view.SetSort(ctx, mode)
	if err != nil {
		return err
	}
	a.draw(v, false)
	return nil
}

func (a *App) Toggle(ctx context.Context, id string) error {
	if v := a.view.View(); v.Empty {
		if _, err := a.view.Render(ctx); err != nil {
			return err
		}
	}
	v, err := a.view.Toggle(ctx, id)
	if err != nil {
		return err
	}
	a.draw(v, false)
	return nil
}

// Edit seeds a form with the event's current values. An empty answer keeps
// the current value; declining the final confirmation cancels the edit.
func (a *App) Edit(ctx context.Context, id string) error {
	form, err := a.view.EditForm(ctx, id)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", form.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = form.Title
	}
	local, err := getSimpleText(a.reader, fmt.Sprintf("Target time [%s]", form.LocalTime), a.out)
	if err != nil {
		return err
	}
	if local == "" {
		local = form.LocalTime
	}

	ok, err := getConfirm(a.reader, "Save changes?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Edit cancelled.")
		return nil
	}

	v, err := a.view.SubmitEdit(ctx, id, title, local)
	if err != nil {
		return err
	}
	a.println("Event updated.")
	a.draw(v, false)
	return nil
}

// Delete removes an event after explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	e, found, err := a.events.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}

	ok, err := getConfirm(a.reader, fmt.Sprintf("Delete %q?", e.Title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Delete cancelled.")
		return nil
	}

	v, err := a.view.Delete(ctx, id)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "event deleted", "id", id)
	a.println("Event deleted.")
	a.draw(v, false)
	return nil
}

// Link prints the shareable link of an event.
func (a *App) Link(ctx context.Context, id string) error {
	if _, found, err := a.events.Get(ctx, id); err != nil {
		return err
	} else if !found {
		return fmt.Errorf("event %s: %w", id, common.ErrorNotFound)
	}
	a.println(a.view.Link(id))
	return nil
}
