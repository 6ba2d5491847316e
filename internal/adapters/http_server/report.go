package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"restful_booker/internal/domain"
)

type report struct {
	Report []domain.ReportEntry `json:"report"`
}

// reportAll lists every booking as a calendar entry. Guest names are only
// shown to callers holding a valid token.
func (h *Handlers) reportAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries(r.Context(), 0, h.authorized(r))
	if err != nil {
		writeStoreErr(w, err, "report")
		return
	}
	writeJSON(w, http.StatusOK, report{Report: entries})
}

func (h *Handlers) reportRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.Store.GetRoom(r.Context(), id); err != nil {
		writeStoreErr(w, err, "room")
		return
	}
	entries, err := h.entries(r.Context(), id, false)
	if err != nil {
		writeStoreErr(w, err, "report")
		return
	}
	writeJSON(w, http.StatusOK, report{Report: entries})
}

func (h *Handlers) entries(ctx context.Context, roomID int, named bool) ([]domain.ReportEntry, error) {
	bs, err := h.Store.ListBookings(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReportEntry, 0, len(bs))
	for _, b := range bs {
		title := "Unavailable"
		if named {
			title = fmt.Sprintf("%s %s - Room: %d", b.Firstname, b.Lastname, b.RoomID)
		}
		out = append(out, domain.ReportEntry{Start: b.BookingDates.Checkin, End: b.BookingDates.Checkout, Title: title})
	}
	return out, nil
}
