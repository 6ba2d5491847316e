package booker

import (
	"context"
	"net/http"
	"strconv"

	"restful_booker/internal/domain"
)

// RoomAPI wraps /room. Mutations need a token.
type RoomAPI struct{ c *Client }

func (r *RoomAPI) List(ctx context.Context) (*Response, error) {
	return r.c.do(ctx, request{method: http.MethodGet, resource: "room"})
}

// Create builds a room from opts and posts it with a fresh token.
func (r *RoomAPI) Create(ctx context.Context, opts ...RoomOption) (*Response, error) {
	return r.Add(ctx, NewRoom(opts...))
}

func (r *RoomAPI) Add(ctx context.Context, room domain.Room) (*Response, error) {
	token, err := r.c.Auth.Token(ctx)
	if err != nil {
		return nil, err
	}
	return r.c.do(ctx, request{method: http.MethodPost, resource: "room", body: room, token: withToken(token)})
}

func (r *RoomAPI) Get(ctx context.Context, id int) (*Response, error) {
	return r.c.do(ctx, request{method: http.MethodGet, resource: "room", segments: []string{strconv.Itoa(id)}})
}

func (r *RoomAPI) Update(ctx context.Context, id int, room domain.Room, token string) (*Response, error) {
	return r.c.do(ctx, request{
		method:   http.MethodPut,
		resource: "room",
		segments: []string{strconv.Itoa(id)},
		body:     room,
		token:    withToken(token),
	})
}

func (r *RoomAPI) Delete(ctx context.Context, id int, token string) (*Response, error) {
	return r.c.do(ctx, request{
		method:   http.MethodDelete,
		resource: "room",
		segments: []string{strconv.Itoa(id)},
		token:    withToken(token),
	})
}

// CreatedID reads the roomid from a create response.
func (r *RoomAPI) CreatedID(resp *Response) (int, error) { return decodeID(resp, "roomid") }
