package httpserver

import (
	"context"
	"fmt"

	"restful_booker/internal/domain"
)

// DefaultBranding is what a fresh platform instance shows.
var DefaultBranding = domain.Branding{
	Name:        "Shady Meadows B&B",
	Map:         domain.Map{Latitude: 52.6351204, Longitude: 1.2733774},
	LogoURL:     "https://www.mwtestconsultancy.co.uk/img/rbp-logo.jpg",
	Description: "Welcome to Shady Meadows, a delightful Bed & Breakfast nestled in the hills on Newingtonfordburyshire.",
	Contact: domain.Contact{
		Name:    "Shady Meadows B&B",
		Address: "The Old Farmhouse, Shady Street, Newfordburyshire, NE1 410S",
		Phone:   "012345678901",
		Email:   "fake@fakeemail.com",
	},
}

// Seed fills an empty store with the records a fresh platform ships with:
// branding, one room, one booking on it and one unread message. Stores that
// already hold rooms are left alone.
func Seed(ctx context.Context, st domain.Store) error {
	rooms, err := st.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("seed: list rooms: %w", err)
	}
	if len(rooms) > 0 {
		return nil
	}
	if err := st.PutBranding(ctx, DefaultBranding); err != nil {
		return fmt.Errorf("seed: branding: %w", err)
	}
	room, err := st.CreateRoom(ctx, domain.Room{
		RoomNumber:  101,
		Type:        domain.RoomSingle,
		Accessible:  true,
		Image:       "https://www.mwtestconsultancy.co.uk/img/testim/room2.jpg",
		Description: "Aenean porttitor mauris sit amet lacinia molestie.",
		Features:    []string{"TV", "WiFi", "Safe"},
		RoomPrice:   100,
	})
	if err != nil {
		return fmt.Errorf("seed: room: %w", err)
	}
	if _, err := st.CreateBooking(ctx, domain.Booking{
		RoomID:       room.RoomID,
		Firstname:    "James",
		Lastname:     "Dean",
		DepositPaid:  true,
		BookingDates: domain.BookingDates{Checkin: "2022-02-01", Checkout: "2022-02-05"},
	}); err != nil {
		return fmt.Errorf("seed: booking: %w", err)
	}
	if _, err := st.CreateMessage(ctx, domain.Message{
		Name:        "James Dean",
		Email:       "james@email.com",
		Phone:       "01402 619211",
		Subject:     "Booking enquiry",
		Description: "I would like to book a room at your place",
	}); err != nil {
		return fmt.Errorf("seed: message: %w", err)
	}
	return nil
}
