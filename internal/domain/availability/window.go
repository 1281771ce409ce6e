// Package availability decides which calendar dates of a listing a
// viewer may select. It is the single policy behind every date picker
// and the order-creation validation; all inputs are supplied per call
// and nothing is persisted.
package availability

import (
	"errors"
	"time"
)

var ErrInvertedWindow = errors.New("available_from must not be after available_until")

// BufferDays is deliberate slack on both window bounds to absorb
// delivery and pickup turnaround.
const BufferDays = 1

const dayKeyFormat = "2006-01-02"

// DateOf truncates t to its civil date at UTC midnight. All resolver
// math happens on these normalized values.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is the inclusive [from, until] range a lender declared for a
// listing. Either bound may be open.
type Window struct {
	from  *time.Time
	until *time.Time
}

// NewWindow rejects inverted bounds outright instead of guessing what
// the lender meant.
func NewWindow(from, until *time.Time) (Window, error) {
	w := Window{}
	if from != nil {
		d := DateOf(*from)
		w.from = &d
	}
	if until != nil {
		d := DateOf(*until)
		w.until = &d
	}
	if w.from != nil && w.until != nil && w.from.After(*w.until) {
		return Window{}, ErrInvertedWindow
	}
	return w, nil
}

// OpenWindow has no bounds: every future date is inside it.
func OpenWindow() Window {
	return Window{}
}

func (w Window) From() *time.Time  { return w.from }
func (w Window) Until() *time.Time { return w.until }

// Resolver evaluates date selectability for one listing and one viewer.
type Resolver struct {
	window     Window
	booked     map[string]struct{}
	privileged bool
	today      time.Time
}

// NewResolver builds a resolver. privileged marks the listing's owner
// or a platform admin; for them the window bounds and booked dates do
// not apply, only the past does. today is the viewer's current civil
// date (inject it from a clock).
func NewResolver(window Window, bookedDates []time.Time, privileged bool, today time.Time) Resolver {
	booked := make(map[string]struct{}, len(bookedDates))
	for _, d := range bookedDates {
		booked[DateOf(d).Format(dayKeyFormat)] = struct{}{}
	}
	return Resolver{
		window:     window,
		booked:     booked,
		privileged: privileged,
		today:      DateOf(today),
	}
}

// DateDisabled reports whether d cannot be selected.
func (r Resolver) DateDisabled(t time.Time) bool {
	d := DateOf(t)

	if d.Before(r.today) {
		return true
	}
	if r.privileged {
		return false
	}

	if from := r.window.from; from != nil {
		if d.Before(from.AddDate(0, 0, -BufferDays)) {
			return true
		}
	}
	if until := r.window.until; until != nil {
		if d.After(until.AddDate(0, 0, BufferDays)) {
			return true
		}
	}

	_, taken := r.booked[d.Format(dayKeyFormat)]
	return taken
}

func (r Resolver) DateSelectable(t time.Time) bool {
	return !r.DateDisabled(t)
}

// SelectableRange resolves the [min, max] range a date picker should
// offer. max is nil when the window is open-ended upward. Booked dates
// inside the range stay individually disabled.
func (r Resolver) SelectableRange() (time.Time, *time.Time) {
	minDate := r.today
	if !r.privileged && r.window.from != nil {
		if buffered := r.window.from.AddDate(0, 0, -BufferDays); buffered.After(minDate) {
			minDate = buffered
		}
	}

	if r.privileged || r.window.until == nil {
		return minDate, nil
	}
	maxDate := r.window.until.AddDate(0, 0, BufferDays)
	return minDate, &maxDate
}

// FirstDisabled scans the inclusive date range and returns the first
// date that cannot be selected.
func (r Resolver) FirstDisabled(start, end time.Time) (time.Time, bool) {
	for _, d := range DatesBetween(start, end) {
		if r.DateDisabled(d) {
			return d, true
		}
	}
	return time.Time{}, false
}

// Conflicts reports whether any booked date falls inside the inclusive
// [start, end] rental period. Bounds and the past are not considered;
// use it to re-verify an already-validated period against fresher
// booked dates.
func Conflicts(bookedDates []time.Time, start, end time.Time) bool {
	booked := make(map[string]struct{}, len(bookedDates))
	for _, d := range bookedDates {
		booked[DateOf(d).Format(dayKeyFormat)] = struct{}{}
	}
	for _, d := range DatesBetween(start, end) {
		if _, taken := booked[d.Format(dayKeyFormat)]; taken {
			return true
		}
	}
	return false
}

// DatesBetween expands an inclusive civil date range. Returns nil when
// start is after end.
func DatesBetween(start, end time.Time) []time.Time {
	s, e := DateOf(start), DateOf(end)
	if s.After(e) {
		return nil
	}
	var dates []time.Time
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
