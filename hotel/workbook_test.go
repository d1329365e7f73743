package hotel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func tempWorkbook(t *testing.T) Workbook {
	t.Helper()
	return Workbook{
		Path:           filepath.Join(t.TempDir(), "hotel.xlsx"),
		CurrencySuffix: "RUB",
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	wb := tempWorkbook(t)

	src := NewStore()
	require.NoError(t, src.AddClient(Client{ID: 2, LastName: "Smirnova", FirstName: "Anna", Patronymic: "S.", Residence: "Saint Petersburg"}))
	require.NoError(t, src.AddClient(Client{ID: 1, LastName: "Ivanov", FirstName: "Petr", Patronymic: "A.", Residence: "Moscow"}))
	require.NoError(t, src.AddRoom(Room{ID: 10, Floor: 2, Capacity: 2, Price: price(t, "1850.50"), Category: 3}))
	require.NoError(t, src.AddRoom(Room{ID: 11, Floor: 3, Capacity: 1, Price: price(t, "900"), Category: 1}))
	require.NoError(t, src.AddBooking(Booking{
		ID: 100, ClientID: 1, RoomID: 10,
		BookingDate: Date(2024, time.January, 1),
		CheckIn:     Date(2024, time.January, 5),
		CheckOut:    Date(2024, time.January, 10),
	}))

	require.NoError(t, wb.Save(src))

	loaded, stats, err := wb.Load()
	require.NoError(t, err)
	assert.Zero(t, stats.Total())

	clients, rooms, bookings := loaded.Counts()
	assert.Equal(t, 2, clients)
	assert.Equal(t, 2, rooms)
	assert.Equal(t, 1, bookings)

	c, ok := loaded.Client(1)
	require.True(t, ok)
	assert.Equal(t, "Ivanov", c.LastName)
	assert.Equal(t, "Moscow", c.Residence)

	r, ok := loaded.Room(10)
	require.True(t, ok)
	assert.True(t, r.Price.Equal(price(t, "1850.50")), "price must round-trip exactly, got %s", r.Price)
	assert.Equal(t, 3, r.Category)

	b, ok := loaded.Booking(100)
	require.True(t, ok)
	assert.Equal(t, 1, b.ClientID)
	assert.Equal(t, 10, b.RoomID)
	assert.True(t, b.CheckIn.Equal(Date(2024, time.January, 5)))
	assert.True(t, b.CheckOut.Equal(Date(2024, time.January, 10)))
}

func TestWorkbookSavesSortedByID(t *testing.T) {
	wb := tempWorkbook(t)

	src := NewStore()
	for _, id := range []int{3, 1, 2} {
		require.NoError(t, src.AddClient(Client{ID: id, LastName: "Ivanov", FirstName: "Petr", Patronymic: "A.", Residence: "Moscow"}))
	}
	require.NoError(t, wb.Save(src))

	f, err := excelize.OpenFile(wb.Path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetClients)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three clients")
	assert.Equal(t, "Client ID", rows[0][0])
	assert.Equal(t, []string{"1", "2", "3"}, []string{rows[1][0], rows[2][0], rows[3][0]})
}

func TestWorkbookLoadMissingFile(t *testing.T) {
	wb := tempWorkbook(t)

	store, stats, err := wb.Load()
	require.Error(t, err)
	require.NotNil(t, store, "a failed load must still hand back a usable empty store")
	assert.Zero(t, stats.Total())

	clients, rooms, bookings := store.Counts()
	assert.Zero(t, clients)
	assert.Zero(t, rooms)
	assert.Zero(t, bookings)
}

func TestWorkbookLoadSkipsMalformedRows(t *testing.T) {
	wb := tempWorkbook(t)

	// Build a workbook by hand with good and bad rows mixed in.
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SheetClients))
	_, err := f.NewSheet(SheetBookings)
	require.NoError(t, err)
	_, err = f.NewSheet(SheetRooms)
	require.NoError(t, err)

	clientRows := [][]any{
		{"Client ID", "Last Name", "First Name", "Patronymic", "Residence"},
		{1, "Ivanov", "Petr", "A.", "Moscow"},
		{"oops", "Petrov", "Oleg", "B.", "Tomsk"}, // non-numeric id
		{2, "", "Anna", "S.", "Kazan"},            // empty last name
	}
	roomRows := [][]any{
		{"Room ID", "Floor", "Capacity", "Price", "Category"},
		{10, 2, 2, "1500.00 RUB", 3},
		{11, 2, 2, "not-a-price", 3},
		{12, 1, 1, "800 RUB", 9}, // category out of range
	}
	bookingRows := [][]any{
		{"Booking ID", "Client ID", "Room ID", "Booking Date", "Check-In", "Check-Out"},
		{100, 1, 10, "01.01.2024", "05.01.2024", "10.01.2024"},
		{101, 1, 10, "01.01.2024", "35.01.2024", "10.01.2024"},  // bad date
		{102, 99, 10, "01.01.2024", "05.01.2024", "10.01.2024"}, // unknown client
		{103, 1, 10, "01.01.2024", "10.01.2024", "05.01.2024"},  // inverted range
	}

	writeTestRows(t, f, SheetClients, clientRows)
	writeTestRows(t, f, SheetRooms, roomRows)
	writeTestRows(t, f, SheetBookings, bookingRows)
	require.NoError(t, f.SaveAs(wb.Path))
	require.NoError(t, f.Close())

	store, stats, err := wb.Load()
	require.NoError(t, err, "bad rows must not abort the load")

	assert.Equal(t, 2, stats.SkippedClients)
	assert.Equal(t, 2, stats.SkippedRooms)
	assert.Equal(t, 3, stats.SkippedBookings)
	assert.Equal(t, 7, stats.Total())

	clients, rooms, bookings := store.Counts()
	assert.Equal(t, 1, clients)
	assert.Equal(t, 1, rooms)
	assert.Equal(t, 1, bookings)
}

func TestWorkbookPriceFormatting(t *testing.T) {
	wb := Workbook{CurrencySuffix: "RUB"}

	assert.Equal(t, "1850.5 RUB", wb.FormatPrice(price(t, "1850.5")))

	p, err := wb.parsePrice("  1850.5 RUB ")
	require.NoError(t, err)
	assert.True(t, p.Equal(price(t, "1850.5")))

	p, err = wb.parsePrice("900")
	require.NoError(t, err, "a bare number without suffix still parses")
	assert.True(t, p.Equal(price(t, "900")))

	_, err = wb.parsePrice("-5 RUB")
	assert.Error(t, err)
}

func writeTestRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}
