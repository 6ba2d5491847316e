// Package memory keeps platform records in process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"restful_booker/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	branding domain.Branding
	rooms    map[int]domain.Room
	bookings map[int]domain.Booking
	messages map[int]domain.Message
	lastID   struct{ room, booking, message int }
}

var _ domain.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		rooms:    map[int]domain.Room{},
		bookings: map[int]domain.Booking{},
		messages: map[int]domain.Message{},
	}
}

func (s *Store) GetBranding(_ context.Context) (domain.Branding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.branding, nil
}

func (s *Store) PutBranding(_ context.Context, b domain.Branding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branding = b
	return nil
}

// ---- rooms ----

func (s *Store) ListRooms(_ context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, cloneRoom(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out, nil
}

func (s *Store) GetRoom(_ context.Context, id int) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return cloneRoom(r), nil
}

func (s *Store) CreateRoom(_ context.Context, r domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID.room++
	r.RoomID = s.lastID.room
	s.rooms[r.RoomID] = cloneRoom(r)
	return r, nil
}

func (s *Store) UpdateRoom(_ context.Context, id int, r domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	r.RoomID = id
	s.rooms[id] = cloneRoom(r)
	return r, nil
}

func (s *Store) DeleteRoom(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

func cloneRoom(r domain.Room) domain.Room {
	r.Features = append([]string(nil), r.Features...)
	return r
}

// ---- bookings ----

func (s *Store) ListBookings(_ context.Context, roomID int) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if roomID > 0 && b.RoomID != roomID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingID < out[j].BookingID })
	return out, nil
}

func (s *Store) GetBooking(_ context.Context, id int) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (s *Store) CreateBooking(_ context.Context, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID.booking++
	b.BookingID = s.lastID.booking
	s.bookings[b.BookingID] = b
	return b, nil
}

func (s *Store) UpdateBooking(_ context.Context, id int, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	b.BookingID = id
	s.bookings[id] = b
	return b, nil
}

func (s *Store) DeleteBooking(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

// ---- messages ----

func (s *Store) ListMessages(_ context.Context) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageID < out[j].MessageID })
	return out, nil
}

func (s *Store) GetMessage(_ context.Context, id int) (domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return domain.Message{}, domain.ErrNotFound
	}
	return m, nil
}

func (s *Store) CreateMessage(_ context.Context, m domain.Message) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID.message++
	m.MessageID = s.lastID.message
	m.Read = false
	s.messages[m.MessageID] = m
	return m, nil
}

func (s *Store) MarkMessageRead(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Read = true
	s.messages[id] = m
	return nil
}

func (s *Store) DeleteMessage(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

func (s *Store) CountUnread(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, m := range s.messages {
		if !m.Read {
			n++
		}
	}
	return n, nil
}
