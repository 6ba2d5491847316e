package booker

import (
	"context"
	"net/http"
	"strconv"

	"restful_booker/internal/domain"
)

// MessageAPI wraps /message. Creating a message needs no token.
type MessageAPI struct{ c *Client }

func (m *MessageAPI) List(ctx context.Context) (*Response, error) {
	return m.c.do(ctx, request{method: http.MethodGet, resource: "message"})
}

// Create builds a message from opts and posts it.
func (m *MessageAPI) Create(ctx context.Context, opts ...MessageOption) (*Response, error) {
	return m.Send(ctx, NewMessage(opts...))
}

func (m *MessageAPI) Send(ctx context.Context, msg domain.Message) (*Response, error) {
	return m.c.do(ctx, request{method: http.MethodPost, resource: "message", body: msg})
}

func (m *MessageAPI) Get(ctx context.Context, id int) (*Response, error) {
	return m.c.do(ctx, request{
		method:   http.MethodGet,
		resource: "message",
		segments: []string{strconv.Itoa(id)},
	})
}

func (m *MessageAPI) Delete(ctx context.Context, id int, token string) (*Response, error) {
	return m.c.do(ctx, request{
		method:   http.MethodDelete,
		resource: "message",
		segments: []string{strconv.Itoa(id), "delete"},
		token:    withToken(token),
	})
}

func (m *MessageAPI) MarkRead(ctx context.Context, id int, token string) (*Response, error) {
	return m.c.do(ctx, request{
		method:   http.MethodPut,
		resource: "message",
		segments: []string{strconv.Itoa(id), "read"},
		token:    withToken(token),
	})
}

// Count returns the unread message count.
func (m *MessageAPI) Count(ctx context.Context) (*Response, error) {
	return m.c.do(ctx, request{
		method:   http.MethodGet,
		resource: "message",
		segments: []string{"count"},
	})
}

// CreatedID reads the messageid from a create response.
func (m *MessageAPI) CreatedID(resp *Response) (int, error) { return decodeID(resp, "messageid") }
