package attendance

import "errors"

var (
	ErrDuplicateDate    = errors.New("attendance already logged for this date")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrNegativeOvertime = errors.New("overtime hours must not be negative")
)
