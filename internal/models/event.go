package models

import "time"

// Event pairs a title with a target timestamp. ID is unique within the
// owning user's list.
type Event struct {
	ID         string
	Title      string
	TargetTime time.Time
}

// IndexOf returns the position of the event with id, or -1.
func IndexOf(events []Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}
