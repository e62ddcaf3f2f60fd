package domain

import "errors"

var (
	ErrNoEvents            = errors.New("no events loaded")
	ErrTitleRequired       = errors.New("event title required")
	ErrDescriptionRequired = errors.New("event description required")
	ErrLocationRequired    = errors.New("event location required")
)
