package hotel

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The four analytical queries. All are pure reads over the current tables;
// none mutate. An empty result is a valid outcome, not an error (the one
// exception is AveragePrice, which has nothing to divide by).

// RoomsByCategory returns rooms of the given category priced strictly above
// minPrice, ascending by price (ties broken by id for stable output).
func (s *Store) RoomsByCategory(category int, minPrice decimal.Decimal) []Room {
	var out []Room
	for _, r := range s.rooms {
		if r.Category == category && r.Price.GreaterThan(minPrice) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ClientBooking is one row of the clients-with-bookings join.
type ClientBooking struct {
	Client  Client
	Booking Booking
}

// ClientBookingsByCity inner-joins clients whose residence contains substr
// (case-sensitive) with their bookings, ascending by client last name.
// Clients without bookings are dropped, per inner-join semantics.
func (s *Store) ClientBookingsByCity(substr string) []ClientBooking {
	var out []ClientBooking
	for _, c := range s.clients {
		if !strings.Contains(c.Residence, substr) {
			continue
		}
		for _, b := range s.bookings {
			if b.ClientID == c.ID {
				out = append(out, ClientBooking{Client: c, Booking: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Client.LastName != b.Client.LastName {
			return a.Client.LastName < b.Client.LastName
		}
		if a.Client.ID != b.Client.ID {
			return a.Client.ID < b.Client.ID
		}
		return a.Booking.ID < b.Booking.ID
	})
	return out
}

// matchStays walks the Client-Booking-Room join: client residence contains
// substr, room category matches, and check-in falls inside [from, to]
// inclusive. An inverted range matches nothing. A booking whose references
// no longer resolve is skipped silently; the store's invariants make that
// unreachable in practice.
func (s *Store) matchStays(substr string, category int, from, to time.Time, visit func(Room)) {
	for _, b := range s.bookings {
		c, ok := s.clients[b.ClientID]
		if !ok || !strings.Contains(c.Residence, substr) {
			continue
		}
		r, ok := s.rooms[b.RoomID]
		if !ok || r.Category != category {
			continue
		}
		if b.CheckIn.Before(from) || b.CheckIn.After(to) {
			continue
		}
		visit(r)
	}
}

// CountStays counts bookings by clients from the given city in rooms of the
// given category with check-in inside [from, to].
func (s *Store) CountStays(substr string, category int, from, to time.Time) int {
	n := 0
	s.matchStays(substr, category, from, to, func(Room) { n++ })
	return n
}

// AveragePrice returns the mean room price over the matched booking-room
// pairs; a room booked twice counts twice. Returns ErrNoMatches when the
// filtered set is empty.
func (s *Store) AveragePrice(substr string, category int, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	n := 0
	s.matchStays(substr, category, from, to, func(r Room) {
		sum = sum.Add(r.Price)
		n++
	})
	if n == 0 {
		return decimal.Decimal{}, ErrNoMatches
	}
	return sum.Div(decimal.NewFromInt(int64(n))), nil
}
