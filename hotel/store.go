package hotel

import (
	"fmt"
	"iter"
)

// Store owns the three in-memory tables and enforces their invariants on
// every mutation. It is single-owner state: one shell drives it, one
// operation at a time, so no locking is involved.
type Store struct {
	clients  map[int]Client
	rooms    map[int]Room
	bookings map[int]Booking
}

// NewStore returns a Store with three empty tables.
func NewStore() *Store {
	return &Store{
		clients:  make(map[int]Client),
		rooms:    make(map[int]Room),
		bookings: make(map[int]Booking),
	}
}

// ---------------------------------------------------------------------------
// Inserts
// ---------------------------------------------------------------------------

// AddClient inserts a new client. Fails with ErrDuplicateID when the id is
// already taken; the store is left unchanged on failure.
func (s *Store) AddClient(c Client) error {
	if _, ok := s.clients[c.ID]; ok {
		return fmt.Errorf("add client %d: %w", c.ID, ErrDuplicateID)
	}
	s.clients[c.ID] = c
	return nil
}

// AddRoom inserts a new room under the same duplicate-id contract as AddClient.
func (s *Store) AddRoom(r Room) error {
	if _, ok := s.rooms[r.ID]; ok {
		return fmt.Errorf("add room %d: %w", r.ID, ErrDuplicateID)
	}
	s.rooms[r.ID] = r
	return nil
}

// AddBooking inserts a new booking. Checks run in order: duplicate id, client
// reference, room reference, date range. Any failed check leaves all three
// tables untouched.
func (s *Store) AddBooking(b Booking) error {
	if _, ok := s.bookings[b.ID]; ok {
		return fmt.Errorf("add booking %d: %w", b.ID, ErrDuplicateID)
	}
	if _, ok := s.clients[b.ClientID]; !ok {
		return fmt.Errorf("add booking %d: client %d: %w", b.ID, b.ClientID, ErrUnknownReference)
	}
	if _, ok := s.rooms[b.RoomID]; !ok {
		return fmt.Errorf("add booking %d: room %d: %w", b.ID, b.RoomID, ErrUnknownReference)
	}
	if !b.CheckOut.After(b.CheckIn) {
		return fmt.Errorf("add booking %d: %w", b.ID, ErrInvalidDateRange)
	}
	s.bookings[b.ID] = b
	return nil
}

// ---------------------------------------------------------------------------
// Removals
// ---------------------------------------------------------------------------

// RemoveClient deletes a client. Removal is blocked, never cascaded: while
// any booking references the client a ConflictError is returned instead.
func (s *Store) RemoveClient(id int) error {
	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("client %d: %w", id, ErrNotFound)
	}
	if n := s.BookingsForClient(id); n > 0 {
		return &ConflictError{Entity: "client", ID: id, Bookings: n}
	}
	delete(s.clients, id)
	return nil
}

// RemoveRoom deletes a room, symmetric to RemoveClient.
func (s *Store) RemoveRoom(id int) error {
	if _, ok := s.rooms[id]; !ok {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	if n := s.BookingsForRoom(id); n > 0 {
		return &ConflictError{Entity: "room", ID: id, Bookings: n}
	}
	delete(s.rooms, id)
	return nil
}

// RemoveBooking deletes a booking. Nothing references bookings, so the
// removal is unconditional once the id is found.
func (s *Store) RemoveBooking(id int) error {
	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	delete(s.bookings, id)
	return nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Client fetches a single client by id.
func (s *Store) Client(id int) (Client, bool) {
	c, ok := s.clients[id]
	return c, ok
}

// Room fetches a single room by id.
func (s *Store) Room(id int) (Room, bool) {
	r, ok := s.rooms[id]
	return r, ok
}

// Booking fetches a single booking by id.
func (s *Store) Booking(id int) (Booking, bool) {
	b, ok := s.bookings[id]
	return b, ok
}

// BookingsForClient counts the bookings referencing the client.
func (s *Store) BookingsForClient(id int) int {
	n := 0
	for _, b := range s.bookings {
		if b.ClientID == id {
			n++
		}
	}
	return n
}

// BookingsForRoom counts the bookings referencing the room.
func (s *Store) BookingsForRoom(id int) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == id {
			n++
		}
	}
	return n
}

// Counts returns the size of each table.
func (s *Store) Counts() (clients, rooms, bookings int) {
	return len(s.clients), len(s.rooms), len(s.bookings)
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

// Clients yields the stored clients in unspecified order. The sequence is
// restartable and reads the live table; do not mutate the store mid-range.
func (s *Store) Clients() iter.Seq[Client] {
	return func(yield func(Client) bool) {
		for _, c := range s.clients {
			if !yield(c) {
				return
			}
		}
	}
}

// Rooms yields the stored rooms in unspecified order.
func (s *Store) Rooms() iter.Seq[Room] {
	return func(yield func(Room) bool) {
		for _, r := range s.rooms {
			if !yield(r) {
				return
			}
		}
	}
}

// Bookings yields the stored bookings in unspecified order.
func (s *Store) Bookings() iter.Seq[Booking] {
	return func(yield func(Booking) bool) {
		for _, b := range s.bookings {
			if !yield(b) {
				return
			}
		}
	}
}
