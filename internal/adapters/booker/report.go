package booker

import (
	"context"
	"net/http"
	"strconv"
)

// ReportAPI wraps /report. No auth.
type ReportAPI struct{ c *Client }

func (r *ReportAPI) AllRooms(ctx context.Context) (*Response, error) {
	return r.c.do(ctx, request{method: http.MethodGet, resource: "report"})
}

func (r *ReportAPI) Room(ctx context.Context, roomID int) (*Response, error) {
	return r.c.do(ctx, request{
		method:   http.MethodGet,
		resource: "report",
		segments: []string{"room", strconv.Itoa(roomID)},
	})
}
