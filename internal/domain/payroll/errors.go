package payroll

import "errors"

var (
	ErrSalaryConfigNotFound = errors.New("salary config not found")
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrRecordAlreadyPaid    = errors.New("salary record for this month has already been paid")
	ErrAccessDenied         = errors.New("access denied")
)
