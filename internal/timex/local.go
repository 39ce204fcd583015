package timex

import (
	"errors"
	"strings"
	"time"
)

// LocalInputLayout is the minute-precision layout used for editing, the
// same shape an HTML datetime-local field produces.
const LocalInputLayout = "2006-01-02T15:04"

var ErrUnparsable = errors.New("unparsable timestamp")

// Layouts without a zone are read in the caller's location.
var localLayouts = []string{
	LocalInputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse reads a timestamp typed by a user or found in storage. RFC 3339
// values keep their own offset; zone-less values are interpreted in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparsable
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsable
}

// ToLocalInput renders t in loc as an editable minute-precision value.
// The zero time renders as "".
func ToLocalInput(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(LocalInputLayout)
}

// Display renders t for list rows.
func Display(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02 15:04:05 MST")
}

// LoadLocation resolves an IANA name; "" and "Local" map to time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
