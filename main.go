package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"hotel-management/hotel"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Prompt bounds for the interactive surface.
const (
	maxID       = 999_999_999
	maxFloor    = 100
	maxCapacity = 20
	minNameLen  = 1
	maxNameLen  = 60
	maxCityLen  = 120
)

var (
	flagConfig   string
	flagDataFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotelctl",
	Short: "Hotel record manager over a spreadsheet file",
	Long: `hotelctl manages a hotel's clients, rooms and bookings in memory,
loading them from an xlsx workbook on startup and writing them back on
demand. All changes stay in memory until saved.`,
	RunE: runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hotelctl v1.0.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: hotel.yaml in the working directory)")
	rootCmd.Flags().StringVar(&flagDataFile, "data-file", "", "workbook path (overrides config)")
	rootCmd.AddCommand(versionCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := hotel.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}

	wb := hotel.Workbook{Path: cfg.DataFile, CurrencySuffix: cfg.CurrencySuffix}
	store, stats, err := wb.Load()
	if err != nil {
		fmt.Printf("Could not load %s (%v); starting with empty tables.\n", cfg.DataFile, err)
	} else if stats.Total() > 0 {
		fmt.Printf("Loaded %s; skipped %d malformed row(s).\n", cfg.DataFile, stats.Total())
	} else {
		fmt.Printf("Loaded %s.\n", cfg.DataFile)
	}

	// When input is piped, re-printing the menu before every command is noise.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	p := hotel.NewPrompter(os.Stdin, os.Stdout)

	for {
		if interactive {
			printMenu()
		}
		choice, err := p.ReadInt("\nSelect an action: ", 0, 12)
		if err != nil {
			return nil // input exhausted
		}
		fmt.Println()

		switch choice {
		case 0:
			fmt.Println("Exiting.")
			return nil
		case 1:
			handleViewAll(store, wb)
		case 2:
			handleAddClient(p, store)
		case 3:
			handleAddRoom(p, store)
		case 4:
			handleAddBooking(p, store)
		case 5:
			handleRemoveClient(p, store)
		case 6:
			handleRemoveRoom(p, store)
		case 7:
			handleRemoveBooking(p, store)
		case 8:
			handleRoomsByCategory(p, store, wb)
		case 9:
			handleClientBookingsByCity(p, store)
		case 10:
			handleCountStays(p, store)
		case 11:
			handleAveragePrice(p, store, wb)
		case 12:
			handleSave(store, wb)
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("1.  View all tables")
	fmt.Println("2.  Add a client")
	fmt.Println("3.  Add a room")
	fmt.Println("4.  Add a booking")
	fmt.Println("5.  Delete a client")
	fmt.Println("6.  Delete a room")
	fmt.Println("7.  Delete a booking")
	fmt.Println("8.  Query 1: rooms by category and minimum price")
	fmt.Println("9.  Query 2: clients from a city with their bookings")
	fmt.Println("10. Query 3: count stays by city, category and date range")
	fmt.Println("11. Query 4: average room price by city, category and date range")
	fmt.Println("12. Save changes to the workbook")
	fmt.Println("0.  Exit")
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func handleViewAll(store *hotel.Store, wb hotel.Workbook) {
	clients := slices.Collect(store.Clients())
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })

	fmt.Println("Clients:")
	if len(clients) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Printf("%-10s %-20s %-20s %-20s %s\n", "ID", "Last Name", "First Name", "Patronymic", "Residence")
		fmt.Println(strings.Repeat("-", 100))
		for _, c := range clients {
			fmt.Printf("%-10d %-20s %-20s %-20s %s\n", c.ID, c.LastName, c.FirstName, c.Patronymic, c.Residence)
		}
	}

	rooms := slices.Collect(store.Rooms())
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	fmt.Println("\nRooms:")
	if len(rooms) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Printf("%-10s %-8s %-10s %-15s %s\n", "ID", "Floor", "Capacity", "Price", "Category")
		fmt.Println(strings.Repeat("-", 60))
		for _, r := range rooms {
			fmt.Printf("%-10d %-8d %-10d %-15s %d\n", r.ID, r.Floor, r.Capacity, wb.FormatPrice(r.Price), r.Category)
		}
	}

	bookings := slices.Collect(store.Bookings())
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })

	fmt.Println("\nBookings:")
	if len(bookings) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Printf("%-10s %-10s %-10s %-14s %-14s %s\n", "ID", "Client", "Room", "Booked", "Check-In", "Check-Out")
		fmt.Println(strings.Repeat("-", 75))
		for _, b := range bookings {
			fmt.Printf("%-10d %-10d %-10d %-14s %-14s %s\n",
				b.ID, b.ClientID, b.RoomID,
				b.BookingDate.Format(hotel.DateLayout),
				b.CheckIn.Format(hotel.DateLayout),
				b.CheckOut.Format(hotel.DateLayout))
		}
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func handleAddClient(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Client ID: ", 1, maxID)
	if err != nil {
		return
	}
	lastName, err := p.ReadString("Last name: ", minNameLen, maxNameLen)
	if err != nil {
		return
	}
	firstName, err := p.ReadString("First name: ", minNameLen, maxNameLen)
	if err != nil {
		return
	}
	patronymic, err := p.ReadString("Patronymic: ", minNameLen, maxNameLen)
	if err != nil {
		return
	}
	residence, err := p.ReadString("Residence (city): ", minNameLen, maxCityLen)
	if err != nil {
		return
	}

	c := hotel.Client{ID: id, LastName: lastName, FirstName: firstName, Patronymic: patronymic, Residence: residence}
	if err := store.AddClient(c); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s\n", c)
}

func handleAddRoom(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Room ID: ", 1, maxID)
	if err != nil {
		return
	}
	floor, err := p.ReadInt("Floor: ", 1, maxFloor)
	if err != nil {
		return
	}
	capacity, err := p.ReadInt("Capacity: ", 1, maxCapacity)
	if err != nil {
		return
	}
	price, err := p.ReadDecimal("Price per night: ", decimal.Zero)
	if err != nil {
		return
	}
	category, err := p.ReadInt("Category (1-5): ", hotel.CategoryMin, hotel.CategoryMax)
	if err != nil {
		return
	}

	r := hotel.Room{ID: id, Floor: floor, Capacity: capacity, Price: price, Category: category}
	if err := store.AddRoom(r); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s\n", r)
}

func handleAddBooking(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Booking ID: ", 1, maxID)
	if err != nil {
		return
	}
	clientID, err := p.ReadInt("Client ID: ", 1, maxID)
	if err != nil {
		return
	}
	roomID, err := p.ReadInt("Room ID: ", 1, maxID)
	if err != nil {
		return
	}
	booked, err := p.ReadDate("Booking date (dd.mm.yyyy): ")
	if err != nil {
		return
	}
	checkIn, err := p.ReadDate("Check-in date (dd.mm.yyyy): ")
	if err != nil {
		return
	}
	checkOut, err := p.ReadDate("Check-out date (dd.mm.yyyy): ")
	if err != nil {
		return
	}

	b := hotel.Booking{ID: id, ClientID: clientID, RoomID: roomID, BookingDate: booked, CheckIn: checkIn, CheckOut: checkOut}
	if err := store.AddBooking(b); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added %s\n", b)
}

func handleRemoveClient(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Client ID: ", 1, maxID)
	if err != nil {
		return
	}
	if err := store.RemoveClient(id); err != nil {
		reportRemoveError(err)
		return
	}
	fmt.Printf("Client %d deleted.\n", id)
}

func handleRemoveRoom(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Room ID: ", 1, maxID)
	if err != nil {
		return
	}
	if err := store.RemoveRoom(id); err != nil {
		reportRemoveError(err)
		return
	}
	fmt.Printf("Room %d deleted.\n", id)
}

func handleRemoveBooking(p *hotel.Prompter, store *hotel.Store) {
	id, err := p.ReadInt("Booking ID: ", 1, maxID)
	if err != nil {
		return
	}
	if err := store.RemoveBooking(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Booking %d deleted.\n", id)
}

// reportRemoveError spells out referential conflicts; other errors print as-is.
func reportRemoveError(err error) {
	var conflict *hotel.ConflictError
	if errors.As(err, &conflict) {
		fmt.Printf("Cannot delete %s %d: %d booking(s) still reference it. Delete those bookings first.\n",
			conflict.Entity, conflict.ID, conflict.Bookings)
		return
	}
	fmt.Printf("Error: %v\n", err)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func handleRoomsByCategory(p *hotel.Prompter, store *hotel.Store, wb hotel.Workbook) {
	category, err := p.ReadInt("Category (1-5): ", hotel.CategoryMin, hotel.CategoryMax)
	if err != nil {
		return
	}
	minPrice, err := p.ReadDecimal("Minimum price (exclusive): ", decimal.Zero)
	if err != nil {
		return
	}

	rooms := store.RoomsByCategory(category, minPrice)
	if len(rooms) == 0 {
		fmt.Printf("No category-%d rooms priced above %s.\n", category, wb.FormatPrice(minPrice))
		return
	}
	fmt.Printf("Category-%d rooms priced above %s, cheapest first:\n", category, wb.FormatPrice(minPrice))
	for _, r := range rooms {
		fmt.Printf("  %s\n", r)
	}
}

func handleClientBookingsByCity(p *hotel.Prompter, store *hotel.Store) {
	city, err := p.ReadString("City substring: ", 1, maxCityLen)
	if err != nil {
		return
	}

	rows := store.ClientBookingsByCity(city)
	if len(rows) == 0 {
		fmt.Printf("No clients from %q with bookings.\n", city)
		return
	}
	fmt.Printf("Clients from %q and their bookings, by last name:\n", city)
	for _, row := range rows {
		fmt.Printf("  %s\n    %s\n", row.Client, row.Booking)
	}
}

func handleCountStays(p *hotel.Prompter, store *hotel.Store) {
	city, err := p.ReadString("City substring: ", 1, maxCityLen)
	if err != nil {
		return
	}
	category, err := p.ReadInt("Category (1-5): ", hotel.CategoryMin, hotel.CategoryMax)
	if err != nil {
		return
	}
	from, err := p.ReadDate("Range start (dd.mm.yyyy): ")
	if err != nil {
		return
	}
	to, err := p.ReadDate("Range end (dd.mm.yyyy): ")
	if err != nil {
		return
	}

	n := store.CountStays(city, category, from, to)
	fmt.Printf("Bookings by clients from %q in category-%d rooms with check-in between %s and %s: %d\n",
		city, category, from.Format(hotel.DateLayout), to.Format(hotel.DateLayout), n)
}

func handleAveragePrice(p *hotel.Prompter, store *hotel.Store, wb hotel.Workbook) {
	city, err := p.ReadString("City substring: ", 1, maxCityLen)
	if err != nil {
		return
	}
	category, err := p.ReadInt("Category (1-5): ", hotel.CategoryMin, hotel.CategoryMax)
	if err != nil {
		return
	}
	from, err := p.ReadDate("Range start (dd.mm.yyyy): ")
	if err != nil {
		return
	}
	to, err := p.ReadDate("Range end (dd.mm.yyyy): ")
	if err != nil {
		return
	}

	avg, err := store.AveragePrice(city, category, from, to)
	if errors.Is(err, hotel.ErrNoMatches) {
		fmt.Println("No matching bookings; nothing to average.")
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	// IntPart truncates toward zero; the legacy report printed the truncated
	// value and that behaviour is kept.
	fmt.Printf("Average room price: %s (as a whole number: %d)\n", wb.FormatPrice(avg), avg.IntPart())
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

func handleSave(store *hotel.Store, wb hotel.Workbook) {
	if err := wb.Save(store); err != nil {
		fmt.Printf("Save failed: %v. In-memory data is unchanged.\n", err)
		return
	}
	clients, rooms, bookings := store.Counts()
	fmt.Printf("Saved %d client(s), %d room(s), %d booking(s) to %s.\n", clients, rooms, bookings, wb.Path)
}
