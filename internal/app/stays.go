package app

import (
	"sync"
	"time"

	"restful_booker/internal/randdata"
)

// Stays hands out non-overlapping check-in/check-out dates, starting at a
// random day a few years ahead so separate runs rarely meet.
type Stays struct {
	mu   sync.Mutex
	next time.Time
}

func NewStays() *Stays {
	y, m, d := time.Now().UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, randdata.IntBetween(400, 4000))
	return &Stays{next: start}
}

// Next returns a stay of the given nights, leaving a free day after it.
func (s *Stays) Next(nights int) (checkin, checkout string) {
	if nights < 1 {
		nights = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.next
	out := in.AddDate(0, 0, nights)
	s.next = out.AddDate(0, 0, 1)
	return in.Format(time.DateOnly), out.Format(time.DateOnly)
}
