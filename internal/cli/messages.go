package cli

import (
	"errors"

	"github.com/dmitrijs2005/countdown/internal/common"
	"github.com/dmitrijs2005/countdown/internal/events"
	"github.com/dmitrijs2005/countdown/internal/listview"
	"github.com/dmitrijs2005/countdown/internal/services"
)

var errPasswordMismatch = errors.New("passwords do not match")

var userMessages = []struct {
	err error
	msg string
}{
	{services.ErrMissingFields, "Please fill all fields."},
	{services.ErrEmailTaken, "Email already registered."},
	{services.ErrUnknownEmail, "No account with this email."},
	{services.ErrWrongPassword, "Incorrect password."},
	{errPasswordMismatch, "Passwords do not match."},
	{events.ErrEmptyTitle, "Enter a title."},
	{events.ErrInvalidTarget, "Enter a valid date and time (YYYY-MM-DDTHH:MM)."},
	{listview.ErrUnknownSort, "Unknown sort mode. Use time-asc, time-desc, alpha-asc or alpha-desc."},
	{common.ErrorNotFound, "No such event."},
}

// userMessage turns known errors into prompt-friendly sentences.
func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
