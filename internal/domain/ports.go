package domain

import (
	"context"
	"time"
)

// Store holds the records served by the stand-in platform.
// Lookups of missing ids return ErrNotFound.
type Store interface {
	GetBranding(ctx context.Context) (Branding, error)
	PutBranding(ctx context.Context, b Branding) error

	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id int) (Room, error)
	CreateRoom(ctx context.Context, r Room) (Room, error)
	UpdateRoom(ctx context.Context, id int, r Room) (Room, error)
	DeleteRoom(ctx context.Context, id int) error

	// ListBookings filters by room when roomID > 0.
	ListBookings(ctx context.Context, roomID int) ([]Booking, error)
	GetBooking(ctx context.Context, id int) (Booking, error)
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBooking(ctx context.Context, id int, b Booking) (Booking, error)
	DeleteBooking(ctx context.Context, id int) error

	ListMessages(ctx context.Context) ([]Message, error)
	GetMessage(ctx context.Context, id int) (Message, error)
	CreateMessage(ctx context.Context, m Message) (Message, error)
	MarkMessageRead(ctx context.Context, id int) error
	DeleteMessage(ctx context.Context, id int) error
	CountUnread(ctx context.Context) (int, error)
}

// TokenStore keeps issued session tokens.
type TokenStore interface {
	Put(ctx context.Context, token string, ttl time.Duration) error
	Valid(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}
