package main

import (
	"fmt"
	"os"
	"time"

	"hotel-management/hotel"

	"github.com/shopspring/decimal"
)

const workbookFile = "hotel.xlsx"

// seed_data rebuilds the demo workbook from scratch so the interactive shell
// has something to load on a fresh checkout.
func main() {
	fmt.Println("Removing any existing workbook...")
	if err := os.Remove(workbookFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", workbookFile, err)
	}

	store := hotel.NewStore()

	clients := []hotel.Client{
		{ID: 1, LastName: "Ivanov", FirstName: "Petr", Patronymic: "Alekseevich", Residence: "Moscow"},
		{ID: 2, LastName: "Smirnova", FirstName: "Anna", Patronymic: "Sergeevna", Residence: "Saint Petersburg"},
		{ID: 3, LastName: "Kuznetsov", FirstName: "Dmitry", Patronymic: "Ivanovich", Residence: "Tomsk"},
		{ID: 4, LastName: "Volkova", FirstName: "Elena", Patronymic: "Petrovna", Residence: "Moscow"},
		{ID: 5, LastName: "Sokolov", FirstName: "Mikhail", Patronymic: "Andreevich", Residence: "Kazan"},
	}
	rooms := []hotel.Room{
		{ID: 101, Floor: 1, Capacity: 1, Price: price("1200.00"), Category: 1},
		{ID: 102, Floor: 1, Capacity: 2, Price: price("1850.50"), Category: 2},
		{ID: 201, Floor: 2, Capacity: 2, Price: price("2400.00"), Category: 3},
		{ID: 202, Floor: 2, Capacity: 3, Price: price("2999.99"), Category: 3},
		{ID: 301, Floor: 3, Capacity: 2, Price: price("4500.00"), Category: 4},
		{ID: 302, Floor: 3, Capacity: 4, Price: price("7800.00"), Category: 5},
	}
	bookings := []hotel.Booking{
		{ID: 1001, ClientID: 1, RoomID: 102, BookingDate: date(2024, 1, 5), CheckIn: date(2024, 1, 10), CheckOut: date(2024, 1, 15)},
		{ID: 1002, ClientID: 2, RoomID: 201, BookingDate: date(2024, 1, 8), CheckIn: date(2024, 2, 1), CheckOut: date(2024, 2, 4)},
		{ID: 1003, ClientID: 1, RoomID: 301, BookingDate: date(2024, 2, 14), CheckIn: date(2024, 3, 8), CheckOut: date(2024, 3, 12)},
		{ID: 1004, ClientID: 3, RoomID: 101, BookingDate: date(2024, 2, 20), CheckIn: date(2024, 2, 25), CheckOut: date(2024, 2, 28)},
		{ID: 1005, ClientID: 4, RoomID: 202, BookingDate: date(2024, 3, 1), CheckIn: date(2024, 4, 10), CheckOut: date(2024, 4, 20)},
		{ID: 1006, ClientID: 5, RoomID: 302, BookingDate: date(2024, 3, 15), CheckIn: date(2024, 5, 1), CheckOut: date(2024, 5, 3)},
		{ID: 1007, ClientID: 4, RoomID: 102, BookingDate: date(2024, 4, 2), CheckIn: date(2024, 6, 12), CheckOut: date(2024, 6, 14)},
		{ID: 1008, ClientID: 2, RoomID: 301, BookingDate: date(2024, 4, 9), CheckIn: date(2024, 7, 1), CheckOut: date(2024, 7, 8)},
	}

	okCount := 0
	errCount := 0
	for _, c := range clients {
		if err := store.AddClient(c); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errCount++
			continue
		}
		okCount++
	}
	for _, r := range rooms {
		if err := store.AddRoom(r); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errCount++
			continue
		}
		okCount++
	}
	for _, b := range bookings {
		if err := store.AddBooking(b); err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errCount++
			continue
		}
		okCount++
	}

	wb := hotel.Workbook{Path: workbookFile, CurrencySuffix: hotel.DefaultCurrencySuffix}
	if err := wb.Save(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSeed complete!\n")
	fmt.Printf("Records written: %d\n", okCount)
	fmt.Printf("Errors: %d\n", errCount)
	fmt.Printf("Workbook: %s\n", workbookFile)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return hotel.Date(year, time.Month(month), day)
}
