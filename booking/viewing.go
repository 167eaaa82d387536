// Package booking validates and accepts viewing and contact requests.
// Submission is an asynchronous boundary: the shipped implementation
// simulates acceptance after a short delay, and a real backend client can
// replace it without touching callers.
package booking

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AvailableTimes is the fixed list of hourly viewing slots.
var AvailableTimes = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// Viewing is a request to schedule a property viewing.
type Viewing struct {
	PropertyID int       `json:"propertyId" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	Time       string    `json:"time" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone" validate:"required"`
	Message    string    `json:"message"`
}

// Validate checks the mandatory fields and the time slot. It deliberately
// does not check the date window; see DateWithinWindow.
func (v *Viewing) Validate() error {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		return err
	}

	for _, slot := range AvailableTimes {
		if v.Time == slot {
			return nil
		}
	}
	return fmt.Errorf("%q is not an available time slot", v.Time)
}

// DateWithinWindow reports whether the requested date falls in
// [today, today + 2 months). The date picker is expected to enforce this at
// selection time; submission does not re-check it.
func (v *Viewing) DateWithinWindow(now time.Time) bool {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if v.Date.Before(startOfDay) {
		return false
	}
	return v.Date.Before(now.AddDate(0, 2, 0))
}
