package organization

import "errors"

// Organization settings domain errors
var (
	ErrSettingsNotFound = errors.New("organization settings not found")
	ErrLocationNotFound = errors.New("office location not found")
	ErrHolidayNotFound  = errors.New("holiday not found")
)
