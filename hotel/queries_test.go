package hotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryStore seeds clients in two cities, rooms across categories, and
// bookings linking them. Used by all four query tests.
func queryStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()

	require.NoError(t, s.AddClient(Client{ID: 1, LastName: "Ivanov", FirstName: "Petr", Patronymic: "A.", Residence: "Moscow"}))
	require.NoError(t, s.AddClient(Client{ID: 2, LastName: "Abramov", FirstName: "Ivan", Patronymic: "B.", Residence: "Moscow"}))
	require.NoError(t, s.AddClient(Client{ID: 3, LastName: "Petrov", FirstName: "Oleg", Patronymic: "C.", Residence: "Tomsk"}))

	require.NoError(t, s.AddRoom(Room{ID: 1, Floor: 1, Capacity: 1, Price: price(t, "500"), Category: 2}))
	require.NoError(t, s.AddRoom(Room{ID: 2, Floor: 1, Capacity: 2, Price: price(t, "1500"), Category: 2}))
	require.NoError(t, s.AddRoom(Room{ID: 3, Floor: 2, Capacity: 2, Price: price(t, "2000"), Category: 3}))

	require.NoError(t, s.AddBooking(Booking{
		ID: 10, ClientID: 1, RoomID: 2,
		BookingDate: Date(2024, time.January, 1),
		CheckIn:     Date(2024, time.January, 5),
		CheckOut:    Date(2024, time.January, 10),
	}))
	require.NoError(t, s.AddBooking(Booking{
		ID: 11, ClientID: 3, RoomID: 3,
		BookingDate: Date(2024, time.January, 2),
		CheckIn:     Date(2024, time.February, 1),
		CheckOut:    Date(2024, time.February, 3),
	}))
	require.NoError(t, s.AddBooking(Booking{
		ID: 12, ClientID: 2, RoomID: 1,
		BookingDate: Date(2024, time.January, 3),
		CheckIn:     Date(2024, time.January, 20),
		CheckOut:    Date(2024, time.January, 25),
	}))

	return s
}

func TestRoomsByCategory(t *testing.T) {
	s := queryStore(t)

	t.Run("filters category and strict minimum price", func(t *testing.T) {
		rooms := s.RoomsByCategory(2, price(t, "1000"))
		require.Len(t, rooms, 1)
		assert.Equal(t, 2, rooms[0].ID)
	})

	t.Run("minimum price is exclusive", func(t *testing.T) {
		rooms := s.RoomsByCategory(2, price(t, "1500"))
		assert.Empty(t, rooms)
	})

	t.Run("ascending by price", func(t *testing.T) {
		rooms := s.RoomsByCategory(2, price(t, "0"))
		require.Len(t, rooms, 2)
		assert.Equal(t, 1, rooms[0].ID)
		assert.Equal(t, 2, rooms[1].ID)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		rooms := s.RoomsByCategory(5, price(t, "0"))
		assert.Empty(t, rooms)
	})
}

func TestClientBookingsByCity(t *testing.T) {
	s := queryStore(t)

	t.Run("inner join excludes clients without bookings", func(t *testing.T) {
		require.NoError(t, s.AddClient(Client{ID: 4, LastName: "Zaytsev", FirstName: "Igor", Patronymic: "D.", Residence: "Moscow"}))

		rows := s.ClientBookingsByCity("Moscow")
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.NotEqual(t, 4, row.Client.ID, "client without bookings must be dropped")
		}
	})

	t.Run("ordered by client last name", func(t *testing.T) {
		rows := s.ClientBookingsByCity("Moscow")
		require.Len(t, rows, 2)
		assert.Equal(t, "Abramov", rows[0].Client.LastName)
		assert.Equal(t, "Ivanov", rows[1].Client.LastName)
	})

	t.Run("substring match is case-sensitive", func(t *testing.T) {
		assert.Empty(t, s.ClientBookingsByCity("moscow"))
		assert.Len(t, s.ClientBookingsByCity("Mos"), 2)
	})

	t.Run("joined rows pair the right booking", func(t *testing.T) {
		rows := s.ClientBookingsByCity("Tomsk")
		require.Len(t, rows, 1)
		assert.Equal(t, 3, rows[0].Client.ID)
		assert.Equal(t, 11, rows[0].Booking.ID)
	})
}

func TestCountStays(t *testing.T) {
	s := queryStore(t)

	tests := []struct {
		name     string
		city     string
		category int
		from, to time.Time
		want     int
	}{
		{
			name: "matches city, category and range",
			city: "Moscow", category: 2,
			from: Date(2024, time.January, 1), to: Date(2024, time.January, 31),
			want: 2,
		},
		{
			name: "range bounds are inclusive",
			city: "Moscow", category: 2,
			from: Date(2024, time.January, 5), to: Date(2024, time.January, 20),
			want: 2,
		},
		{
			name: "range excludes early check-in",
			city: "Moscow", category: 2,
			from: Date(2024, time.January, 6), to: Date(2024, time.January, 31),
			want: 1,
		},
		{
			name: "wrong category",
			city: "Moscow", category: 4,
			from: Date(2024, time.January, 1), to: Date(2024, time.December, 31),
			want: 0,
		},
		{
			name: "inverted range matches nothing",
			city: "Moscow", category: 2,
			from: Date(2024, time.January, 31), to: Date(2024, time.January, 1),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CountStays(tt.city, tt.category, tt.from, tt.to))
		})
	}
}

func TestAveragePrice(t *testing.T) {
	s := queryStore(t)

	t.Run("mean across matched booking-room pairs", func(t *testing.T) {
		avg, err := s.AveragePrice("Moscow", 2, Date(2024, time.January, 1), Date(2024, time.January, 31))
		require.NoError(t, err)
		assert.True(t, avg.Equal(price(t, "1000")), "got %s", avg)
	})

	t.Run("a room booked twice counts twice", func(t *testing.T) {
		require.NoError(t, s.AddBooking(Booking{
			ID: 13, ClientID: 1, RoomID: 2,
			BookingDate: Date(2024, time.January, 4),
			CheckIn:     Date(2024, time.January, 12),
			CheckOut:    Date(2024, time.January, 14),
		}))

		// Prices 500, 1500, 1500 over three bookings.
		avg, err := s.AveragePrice("Moscow", 2, Date(2024, time.January, 1), Date(2024, time.January, 31))
		require.NoError(t, err)
		want := price(t, "3500").Div(price(t, "3"))
		assert.True(t, avg.Equal(want), "got %s, want %s", avg, want)

		// Truncation, not rounding: 1166.66... reports as 1166.
		assert.Equal(t, int64(1166), avg.IntPart())
	})

	t.Run("empty filter reports no data instead of dividing by zero", func(t *testing.T) {
		_, err := s.AveragePrice("Novosibirsk", 2, Date(2024, time.January, 1), Date(2024, time.December, 31))
		assert.ErrorIs(t, err, ErrNoMatches)
	})
}
