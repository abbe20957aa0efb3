package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// IsCalendarDate accepts a plain calendar date string (e.g. "2025-08-14").
// Time-of-day components are rejected; the clinic books whole days.
func IsCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
