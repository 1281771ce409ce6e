package order

import (
	"time"

	"rentimade/internal/domain/availability"
)

// MaxRentalDays bounds a single booking; longer arrangements go
// through support.
const MaxRentalDays = 30

// RentalPeriod is the inclusive civil-date range of a booking.
type RentalPeriod struct {
	start time.Time
	end   time.Time
}

func NewRentalPeriod(start, end time.Time) (RentalPeriod, error) {
	s, e := availability.DateOf(start), availability.DateOf(end)
	if s.After(e) {
		return RentalPeriod{}, ErrInvalidPeriod
	}
	p := RentalPeriod{start: s, end: e}
	if p.Days() > MaxRentalDays {
		return RentalPeriod{}, ErrPeriodTooLong
	}
	return p, nil
}

func (p RentalPeriod) Start() time.Time { return p.start }
func (p RentalPeriod) End() time.Time   { return p.end }

// Days counts the rental days, both endpoints included.
func (p RentalPeriod) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

// Dates expands the period into individual civil dates.
func (p RentalPeriod) Dates() []time.Time {
	return availability.DatesBetween(p.start, p.end)
}

// Overlaps reports whether two periods share at least one date.
func (p RentalPeriod) Overlaps(other RentalPeriod) bool {
	return !p.start.After(other.end) && !other.start.After(p.end)
}

// AddressSnapshot freezes the delivery destination at checkout so later
// address edits cannot change where an accepted order ships.
type AddressSnapshot struct {
	Line1   string
	Line2   string
	City    string
	Pincode string
}
