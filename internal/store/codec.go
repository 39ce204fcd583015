package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/countdown/internal/models"
	"github.com/dmitrijs2005/countdown/internal/timex"
)

// userRecord and eventRecord are the wire shape of the "users" key.
type userRecord struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"passwordHash"`
	Events       []eventRecord `json:"events"`
}

type eventRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TargetTime string `json:"targetTime"`
}

// decodeReport counts what validation had to change while loading.
type decodeReport struct {
	DroppedUsers  int
	DroppedEvents int
	MigratedUsers int
}

func (r decodeReport) clean() bool {
	return r.DroppedUsers == 0 && r.DroppedEvents == 0 && r.MigratedUsers == 0
}

func encodeUsers(reg models.Registry) ([]byte, error) {
	out := make(map[string]userRecord, len(reg))
	for key, u := range reg {
		if u == nil {
			continue
		}
		email := models.NormalizeEmail(key)
		rec := userRecord{
			Name:         u.Name,
			Email:        email,
			PasswordHash: u.PasswordHash,
			Events:       make([]eventRecord, 0, len(u.Events)),
		}
		for _, e := range u.Events {
			rec.Events = append(rec.Events, eventRecord{
				ID:         e.ID,
				Title:      e.Title,
				TargetTime: e.TargetTime.UTC().Format(time.RFC3339Nano),
			})
		}
		out[email] = rec
	}
	return json.Marshal(out)
}

// decodeUsers validates the stored registry. Malformed JSON at the top level
// is an error; malformed user or event records are dropped and counted.
// Zone-less legacy timestamps are read in loc.
func decodeUsers(data []byte, loc *time.Location) (models.Registry, decodeReport, error) {
	var report decodeReport
	reg := make(models.Registry)
	if len(strings.TrimSpace(string(data))) == 0 {
		return reg, report, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, report, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Keys that are already normalized go first so they win collisions.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni := models.NormalizeEmail(keys[i]) == keys[i]
		nj := models.NormalizeEmail(keys[j]) == keys[j]
		if ni != nj {
			return ni
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		email := models.NormalizeEmail(key)
		if email == "" {
			report.DroppedUsers++
			continue
		}
		if _, dup := reg[email]; dup {
			report.DroppedUsers++
			continue
		}

		var rec userRecord
		if err := json.Unmarshal(raw[key], &rec); err != nil {
			report.DroppedUsers++
			continue
		}
		if key != email || rec.Email != email {
			report.MigratedUsers++
		}

		u := &models.User{
			Name:         rec.Name,
			Email:        email,
			PasswordHash: rec.PasswordHash,
			Events:       make([]models.Event, 0, len(rec.Events)),
		}
		seen := make(map[string]struct{}, len(rec.Events))
		for _, er := range rec.Events {
			ev, ok := decodeEvent(er, loc)
			if !ok {
				report.DroppedEvents++
				continue
			}
			if _, dup := seen[ev.ID]; dup {
				report.DroppedEvents++
				continue
			}
			seen[ev.ID] = struct{}{}
			u.Events = append(u.Events, ev)
		}
		reg[email] = u
	}

	return reg, report, nil
}

func decodeEvent(er eventRecord, loc *time.Location) (models.Event, bool) {
	if strings.TrimSpace(er.ID) == "" || strings.TrimSpace(er.Title) == "" {
		return models.Event{}, false
	}
	ts, err := timex.Parse(er.TargetTime, loc)
	if err != nil {
		return models.Event{}, false
	}
	return models.Event{ID: er.ID, Title: er.Title, TargetTime: ts}, true
}
