package app

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"restful_booker/internal/adapters/booker"
)

// Snapshot holds raw list bodies taken at one moment.
type Snapshot struct {
	Bookings string
	Rooms    string
	Messages string
	Report   string
}

// TakeSnapshot reads the list endpoints concurrently. Bookings are limited to
// roomID; 0 reads every room.
func TakeSnapshot(ctx context.Context, cl *booker.Client, roomID int) (Snapshot, error) {
	var s Snapshot
	g, ctx := errgroup.WithContext(ctx)

	read := func(name string, dst *string, call func(context.Context) (*booker.Response, error)) {
		g.Go(func() error {
			resp, err := call(ctx)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", name, err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("snapshot %s: %w: %s", name, resp.Err(), resp)
			}
			*dst = string(resp.Body)
			return nil
		})
	}
	read("bookings", &s.Bookings, func(ctx context.Context) (*booker.Response, error) { return cl.Booking.List(ctx, roomID) })
	read("rooms", &s.Rooms, cl.Room.List)
	read("messages", &s.Messages, cl.Message.List)
	read("report", &s.Report, cl.Report.AllRooms)

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
