package schedule

// Resolve maps every calendar slot to exactly one status, in calendar order.
//
// A closed slot is always closed. Otherwise the first booking on the slot
// decides: open-match if it seeks opponents, booked if not. A slot without
// bookings is available at priceFrom. Bookings for labels that are not on the
// calendar are ignored.
func Resolve(calendar Calendar, bookings []ExistingBooking, closed ClosedSet, priceFrom int64) []SlotStatus {
	first := make(map[string]int, len(bookings))
	for i, b := range bookings {
		if _, seen := first[b.TimeSlot]; !seen {
			first[b.TimeSlot] = i
		}
	}

	slots := make([]SlotStatus, len(calendar))
	for i, label := range calendar {
		slots[i] = SlotStatus{Time: label}

		if closed.Has(label) {
			slots[i].Kind = KindClosed
			continue
		}

		idx, ok := first[label]
		switch {
		case !ok:
			slots[i].Kind = KindAvailable
			slots[i].Price = priceFrom
		case bookings[idx].FindOpponent:
			b := bookings[idx]
			slots[i].Kind = KindOpenMatch
			slots[i].Booking = &b
		default:
			slots[i].Kind = KindBooked
		}
	}
	return slots
}

// Select applies the interaction policy to the slot labelled label.
// Available slots yield a selection; open matches only reveal the team and
// contact of the existing booking.
func (g *Grid) Select(label string) (Interaction, error) {
	for _, s := range g.Slots {
		if s.Time != label {
			continue
		}
		switch s.Kind {
		case KindAvailable:
			return Interaction{Selection: &Selection{
				VenueID: g.VenueID,
				Sport:   g.Sport,
				Date:    g.Date,
				Time:    s.Time,
				Price:   s.Price,
			}}, nil
		case KindOpenMatch:
			b := *s.Booking
			return Interaction{Match: &b}, nil
		default:
			return Interaction{}, ErrSlotNotSelectable
		}
	}
	return Interaction{}, ErrUnknownSlot
}
