package hotel

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names. Column layouts are fixed; the first row of every
// sheet is a header and is skipped on load.
const (
	SheetClients  = "Clients"
	SheetBookings = "Bookings"
	SheetRooms    = "Rooms"
)

var (
	clientHeader  = []any{"Client ID", "Last Name", "First Name", "Patronymic", "Residence"}
	bookingHeader = []any{"Booking ID", "Client ID", "Room ID", "Booking Date", "Check-In", "Check-Out"}
	roomHeader    = []any{"Room ID", "Floor", "Capacity", "Price", "Category"}
)

// LoadStats reports rows skipped during a best-effort load. Skipping is
// deliberate policy: one bad row must not abort the import, but operators
// should still see that it happened.
type LoadStats struct {
	SkippedClients  int
	SkippedRooms    int
	SkippedBookings int
}

// Total sums the skipped-row counts across all three sheets.
func (ls LoadStats) Total() int {
	return ls.SkippedClients + ls.SkippedRooms + ls.SkippedBookings
}

// Workbook maps the three tables to and from a single xlsx file. Prices are
// serialized as "<decimal> <suffix>" text; the decimal part keeps full
// precision so the value round-trips exactly.
type Workbook struct {
	Path           string
	CurrencySuffix string
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

// Load reads the workbook into a fresh Store. Rows that fail per-field
// parsing are skipped individually and counted. A missing or unreadable file
// yields an empty store plus the error, never a partially populated one.
// Every surviving row goes through the Store's own Add checks, so the loaded
// tables always satisfy the structural invariants.
func (w Workbook) Load() (*Store, LoadStats, error) {
	store := NewStore()
	var stats LoadStats

	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return store, stats, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	// Clients and rooms first so booking references resolve.
	for _, row := range sheetRows(f, SheetClients) {
		c, err := parseClientRow(row)
		if err != nil || store.AddClient(c) != nil {
			stats.SkippedClients++
		}
	}
	for _, row := range sheetRows(f, SheetRooms) {
		r, err := w.parseRoomRow(row)
		if err != nil || store.AddRoom(r) != nil {
			stats.SkippedRooms++
		}
	}
	for _, row := range sheetRows(f, SheetBookings) {
		b, err := parseBookingRow(row)
		if err != nil || store.AddBooking(b) != nil {
			stats.SkippedBookings++
		}
	}

	return store, stats, nil
}

// sheetRows returns the data rows of a sheet with the header dropped.
// A missing or empty sheet reads as no rows.
func sheetRows(f *excelize.File, sheet string) [][]string {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// ---------------------------------------------------------------------------
// Typed field parsers
// ---------------------------------------------------------------------------

// parsePositiveInt rejects non-numeric text and values below 1.
func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	if v < 1 {
		return 0, fmt.Errorf("must be positive: %d", v)
	}
	return v, nil
}

// parseDate parses a dd.MM.yyyy calendar date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// parsePrice parses "<decimal> <suffix>" price text, tolerating a missing
// suffix. The formatted text is display convenience only; the decimal part
// is authoritative.
func (w Workbook) parsePrice(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), w.CurrencySuffix))
	p, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a price: %q", s)
	}
	if p.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative price: %q", s)
	}
	return p, nil
}

func parseClientRow(row []string) (Client, error) {
	if len(row) < 5 {
		return Client{}, fmt.Errorf("client row: want 5 columns, got %d", len(row))
	}
	id, err := parsePositiveInt(row[0])
	if err != nil {
		return Client{}, fmt.Errorf("client id: %w", err)
	}
	for _, col := range row[1:5] {
		if strings.TrimSpace(col) == "" {
			return Client{}, fmt.Errorf("client %d: empty text column", id)
		}
	}
	return Client{
		ID:         id,
		LastName:   row[1],
		FirstName:  row[2],
		Patronymic: row[3],
		Residence:  row[4],
	}, nil
}

func (w Workbook) parseRoomRow(row []string) (Room, error) {
	if len(row) < 5 {
		return Room{}, fmt.Errorf("room row: want 5 columns, got %d", len(row))
	}
	id, err := parsePositiveInt(row[0])
	if err != nil {
		return Room{}, fmt.Errorf("room id: %w", err)
	}
	floor, err := parsePositiveInt(row[1])
	if err != nil {
		return Room{}, fmt.Errorf("room %d floor: %w", id, err)
	}
	capacity, err := parsePositiveInt(row[2])
	if err != nil {
		return Room{}, fmt.Errorf("room %d capacity: %w", id, err)
	}
	price, err := w.parsePrice(row[3])
	if err != nil {
		return Room{}, fmt.Errorf("room %d: %w", id, err)
	}
	category, err := parsePositiveInt(row[4])
	if err != nil || category < CategoryMin || category > CategoryMax {
		return Room{}, fmt.Errorf("room %d: category out of range: %q", id, row[4])
	}
	return Room{ID: id, Floor: floor, Capacity: capacity, Price: price, Category: category}, nil
}

func parseBookingRow(row []string) (Booking, error) {
	if len(row) < 6 {
		return Booking{}, fmt.Errorf("booking row: want 6 columns, got %d", len(row))
	}
	id, err := parsePositiveInt(row[0])
	if err != nil {
		return Booking{}, fmt.Errorf("booking id: %w", err)
	}
	clientID, err := parsePositiveInt(row[1])
	if err != nil {
		return Booking{}, fmt.Errorf("booking %d client id: %w", id, err)
	}
	roomID, err := parsePositiveInt(row[2])
	if err != nil {
		return Booking{}, fmt.Errorf("booking %d room id: %w", id, err)
	}
	booked, err := parseDate(row[3])
	if err != nil {
		return Booking{}, fmt.Errorf("booking %d booking date: %w", id, err)
	}
	checkIn, err := parseDate(row[4])
	if err != nil {
		return Booking{}, fmt.Errorf("booking %d check-in: %w", id, err)
	}
	checkOut, err := parseDate(row[5])
	if err != nil {
		return Booking{}, fmt.Errorf("booking %d check-out: %w", id, err)
	}
	return Booking{
		ID:          id,
		ClientID:    clientID,
		RoomID:      roomID,
		BookingDate: booked,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	}, nil
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

// Save writes all three tables, each sorted ascending by its own id. A save
// failure is reported to the caller and leaves the in-memory store untouched.
func (w Workbook) Save(store *Store) error {
	f := excelize.NewFile()
	defer f.Close()

	// excelize starts every file with "Sheet1"; claim it for the first table.
	if err := f.SetSheetName("Sheet1", SheetClients); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, sheet := range []string{SheetBookings, SheetRooms} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}

	if err := w.writeClients(f, store); err != nil {
		return err
	}
	if err := w.writeBookings(f, store); err != nil {
		return err
	}
	if err := w.writeRooms(f, store); err != nil {
		return err
	}

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (w Workbook) writeClients(f *excelize.File, store *Store) error {
	clients := slices.Collect(store.Clients())
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })

	rows := [][]any{clientHeader}
	for _, c := range clients {
		rows = append(rows, []any{c.ID, c.LastName, c.FirstName, c.Patronymic, c.Residence})
	}
	return writeRows(f, SheetClients, rows)
}

func (w Workbook) writeBookings(f *excelize.File, store *Store) error {
	bookings := slices.Collect(store.Bookings())
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })

	rows := [][]any{bookingHeader}
	for _, b := range bookings {
		rows = append(rows, []any{
			b.ID, b.ClientID, b.RoomID,
			b.BookingDate.Format(DateLayout),
			b.CheckIn.Format(DateLayout),
			b.CheckOut.Format(DateLayout),
		})
	}
	return writeRows(f, SheetBookings, rows)
}

func (w Workbook) writeRooms(f *excelize.File, store *Store) error {
	rooms := slices.Collect(store.Rooms())
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	rows := [][]any{roomHeader}
	for _, r := range rooms {
		rows = append(rows, []any{r.ID, r.Floor, r.Capacity, w.FormatPrice(r.Price), r.Category})
	}
	return writeRows(f, SheetRooms, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// FormatPrice renders a price with the configured currency suffix.
func (w Workbook) FormatPrice(p decimal.Decimal) string {
	if w.CurrencySuffix == "" {
		return p.String()
	}
	return p.String() + " " + w.CurrencySuffix
}
