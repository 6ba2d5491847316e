package booker

import (
	"context"
	"net/http"
	"strconv"

	"restful_booker/internal/domain"
)

// BookingAPI wraps /booking. Mutations need a token.
type BookingAPI struct{ c *Client }

type listBookingsQuery struct {
	RoomID int `url:"roomid,omitempty"`
}

// List returns bookings for roomID; 0 lists every room.
func (b *BookingAPI) List(ctx context.Context, roomID int) (*Response, error) {
	return b.c.do(ctx, request{
		method:   http.MethodGet,
		resource: "booking",
		query:    listBookingsQuery{RoomID: roomID},
	})
}

// Create builds a booking for roomID and posts it with a fresh token.
func (b *BookingAPI) Create(ctx context.Context, checkin, checkout string, roomID int, opts ...BookingOption) (*Response, error) {
	return b.Add(ctx, NewBooking(checkin, checkout, roomID, opts...))
}

func (b *BookingAPI) Add(ctx context.Context, bk domain.Booking) (*Response, error) {
	token, err := b.c.Auth.Token(ctx)
	if err != nil {
		return nil, err
	}
	return b.c.do(ctx, request{method: http.MethodPost, resource: "booking", body: bk, token: withToken(token)})
}

func (b *BookingAPI) Get(ctx context.Context, id int) (*Response, error) {
	return b.c.do(ctx, request{method: http.MethodGet, resource: "booking", segments: []string{strconv.Itoa(id)}})
}

func (b *BookingAPI) Update(ctx context.Context, id int, bk domain.Booking, token string) (*Response, error) {
	return b.c.do(ctx, request{
		method:   http.MethodPut,
		resource: "booking",
		segments: []string{strconv.Itoa(id)},
		body:     bk,
		token:    withToken(token),
	})
}

func (b *BookingAPI) Delete(ctx context.Context, id int, token string) (*Response, error) {
	return b.c.do(ctx, request{
		method:   http.MethodDelete,
		resource: "booking",
		segments: []string{strconv.Itoa(id)},
		token:    withToken(token),
	})
}

// CreatedID reads the bookingid from a create response.
func (b *BookingAPI) CreatedID(resp *Response) (int, error) { return decodeID(resp, "bookingid") }
