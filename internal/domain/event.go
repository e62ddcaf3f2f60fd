package domain

import "time"

// DateLayout is the on-record form of event dates.
const DateLayout = "2006-01-02"

// Event is one college event from the startup dataset. The collection is
// loaded once at process start and never mutated afterwards.
type Event struct {
	Title            string
	Description      string
	Date             string // YYYY-MM-DD; unparseable values are kept and shown raw
	Time             string
	Location         string
	Organizer        string
	Fee              string
	RegistrationLink string
	Tags             []string
}

// ParsedDate returns the event date as a calendar day, reporting false when
// the stored value is not a valid YYYY-MM-DD date.
func (e Event) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Validate checks the fields every event must carry.
func (e Event) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.Description == "" {
		return ErrDescriptionRequired
	}
	if e.Location == "" {
		return ErrLocationRequired
	}
	return nil
}
