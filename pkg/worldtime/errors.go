package worldtime

import "errors"

var (
	ErrEmptyTimezone   = errors.New("worldtime: timezone is required")
	ErrUnexpectedReply = errors.New("worldtime: unexpected reply")
)
