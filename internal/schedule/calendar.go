package schedule

import "slices"

// Calendar is the ordered list of bookable one-hour slot labels for a day.
// Every venue shares the same calendar on every date.
type Calendar []string

// ClosedSet holds slot labels that are never bookable.
type ClosedSet map[string]struct{}

func (c ClosedSet) Has(label string) bool {
	_, ok := c[label]
	return ok
}

var defaultSlots = []string{
	"08:00 - 09:00",
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"12:00 - 13:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
	"18:00 - 19:00",
	"19:00 - 20:00",
	"20:00 - 21:00",
	"21:00 - 22:00",
}

// Midday break.
var defaultClosed = []string{"12:00 - 13:00"}

// DefaultCalendar returns a fresh copy of the operating calendar.
func DefaultCalendar() Calendar {
	return slices.Clone(defaultSlots)
}

// DefaultClosed returns the closed slots of the operating calendar.
func DefaultClosed() ClosedSet {
	return NewClosedSet(defaultClosed...)
}

func NewClosedSet(labels ...string) ClosedSet {
	set := make(ClosedSet, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}

// Contains reports whether label is one of the calendar's slots.
func (c Calendar) Contains(label string) bool {
	return slices.Contains(c, label)
}
