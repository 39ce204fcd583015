package listview

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/countdown/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortTimeAsc   SortMode = "time-asc"
	SortTimeDesc  SortMode = "time-desc"
	SortAlphaAsc  SortMode = "alpha-asc"
	SortAlphaDesc SortMode = "alpha-desc"
)

var ErrUnknownSort = errors.New("unknown sort mode")

// SortModes lists the accepted modes, default first.
var SortModes = []SortMode{SortTimeAsc, SortTimeDesc, SortAlphaAsc, SortAlphaDesc}

func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortModes, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// filterEvents keeps events whose title contains the trimmed query,
// ignoring case. An empty query keeps everything.
func filterEvents(list []models.Event, query string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := list[:0:0]
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.Title), q) {
			out = append(out, e)
		}
	}
	return out
}

// sortEvents orders list in place. Equal keys keep their relative order.
func sortEvents(list []models.Event, mode SortMode) {
	switch mode {
	case SortTimeDesc:
		slices.SortStableFunc(list, func(a, b models.Event) int {
			return b.TargetTime.Compare(a.TargetTime)
		})
	case SortAlphaAsc, SortAlphaDesc:
		// Collators are not safe for concurrent use.
		col := collate.New(language.Und, collate.IgnoreCase)
		sign := 1
		if mode == SortAlphaDesc {
			sign = -1
		}
		slices.SortStableFunc(list, func(a, b models.Event) int {
			return sign * col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(list, func(a, b models.Event) int {
			return a.TargetTime.Compare(b.TargetTime)
		})
	}
}
