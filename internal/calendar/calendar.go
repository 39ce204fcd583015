// Package calendar converts events to and from iCalendar (RFC 5545) so
// they can be shared with calendar applications.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/countdown/internal/models"
)

const productID = "-//countdown//events//EN"

var ErrEmptyCalendar = errors.New("calendar has no usable events")

// Draft is an imported event that has not been stored yet.
type Draft struct {
	UID    string
	Title  string
	Target time.Time
}

// Export writes events as one VCALENDAR with a VEVENT each. The event id
// is the UID and the target time is both DTSTART and DTEND.
func Export(w io.Writer, events []models.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now.UTC())
		ve.SetSummary(e.Title)
		ve.SetStartAt(e.TargetTime.UTC())
		ve.SetEndAt(e.TargetTime.UTC())
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// Import reads VEVENTs from r. Events without a summary or a start time
// are skipped; skipped reports how many.
func Import(r io.Reader) (drafts []Draft, skipped int, err error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parse calendar: %w", err)
	}

	for _, ve := range cal.Events() {
		d, ok := draftFrom(ve)
		if !ok {
			skipped++
			continue
		}
		drafts = append(drafts, d)
	}
	if len(drafts) == 0 {
		return nil, skipped, ErrEmptyCalendar
	}
	return drafts, skipped, nil
}

func draftFrom(ve *ical.VEvent) (Draft, bool) {
	var d Draft
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		d.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		d.Title = strings.TrimSpace(p.Value)
	}
	start, err := ve.GetStartAt()
	if err != nil || d.Title == "" || start.IsZero() {
		return Draft{}, false
	}
	d.Target = start
	return d, true
}
