package hotel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used in prompts and in the workbook
// (dd.MM.yyyy).
const DateLayout = "02.01.2006"

// Room categories form a small closed range.
const (
	CategoryMin = 1
	CategoryMax = 5
)

// Client is a registered hotel client. Records are immutable once added;
// the only mutation is removal, and that is blocked while bookings exist.
type Client struct {
	ID         int    `json:"id"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Patronymic string `json:"patronymic"`
	Residence  string `json:"residence"`
}

func (c Client) String() string {
	return fmt.Sprintf("ID: %d, %s %s %s, %s", c.ID, c.LastName, c.FirstName, c.Patronymic, c.Residence)
}

// Room is a hotel room. Price is an exact decimal amount; currency must not
// go through binary floats.
type Room struct {
	ID       int             `json:"id"`
	Floor    int             `json:"floor"`
	Capacity int             `json:"capacity"`
	Price    decimal.Decimal `json:"price"`
	Category int             `json:"category"`
}

func (r Room) String() string {
	return fmt.Sprintf("Room %d, floor %d, sleeps %d, price %s, category %d",
		r.ID, r.Floor, r.Capacity, r.Price, r.Category)
}

// Booking ties a Client to a Room by id. All three dates are calendar dates
// with a zero clock; CheckOut is strictly after CheckIn.
type Booking struct {
	ID          int       `json:"id"`
	ClientID    int       `json:"client_id"`
	RoomID      int       `json:"room_id"`
	BookingDate time.Time `json:"booking_date"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking #%d, client %d, room %d, booked %s, %s to %s",
		b.ID, b.ClientID, b.RoomID,
		b.BookingDate.Format(DateLayout), b.CheckIn.Format(DateLayout), b.CheckOut.Format(DateLayout))
}

// Date builds a calendar date (zero clock, UTC).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
