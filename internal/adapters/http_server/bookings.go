package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restful_booker/internal/domain"
)

type bookingResult struct {
	BookingID int            `json:"bookingid"`
	Booking   domain.Booking `json:"booking"`
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	roomID := 0
	if s := r.URL.Query().Get("roomid"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid roomid", "roomid must be a positive number")
			return
		}
		roomID = n
	}
	bs, err := h.Store.ListBookings(r.Context(), roomID)
	if err != nil {
		writeStoreErr(w, err, "bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Booking{"bookings": bs})
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.Store.GetBooking(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err, "booking")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.Booking
	if !decode(w, r, &b) {
		return
	}
	b, ok := h.admitBooking(w, r, b, 0)
	if !ok {
		return
	}
	saved, err := h.Store.CreateBooking(r.Context(), b)
	if err != nil {
		writeStoreErr(w, err, "booking")
		return
	}
	writeJSON(w, http.StatusOK, bookingResult{BookingID: saved.BookingID, Booking: saved})
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var b domain.Booking
	if !decode(w, r, &b) {
		return
	}
	if _, err := h.Store.GetBooking(r.Context(), id); err != nil {
		writeStoreErr(w, err, "booking")
		return
	}
	b, ok = h.admitBooking(w, r, b, id)
	if !ok {
		return
	}
	saved, err := h.Store.UpdateBooking(r.Context(), id, b)
	if err != nil {
		writeStoreErr(w, err, "booking")
		return
	}
	writeJSON(w, http.StatusOK, bookingResult{BookingID: saved.BookingID, Booking: saved})
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteBooking(r.Context(), id); err != nil {
		writeStoreErr(w, err, "booking")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// admitBooking validates b, checks its room exists and rejects stays that
// overlap another booking of the room (self excludes the booking being
// updated). On success it returns b with its dates in plain date form;
// otherwise it writes the failure response and reports false.
func (h *Handlers) admitBooking(w http.ResponseWriter, r *http.Request, b domain.Booking, self int) (domain.Booking, bool) {
	st, errs := validateBooking(b)
	if len(errs) > 0 {
		writeInvalid(w, errs)
		return b, false
	}
	b.BookingDates = domain.BookingDates{
		Checkin:  st.In.Format(time.DateOnly),
		Checkout: st.Out.Format(time.DateOnly),
	}
	ctx := r.Context()
	if _, err := h.Store.GetRoom(ctx, b.RoomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeInvalid(w, []string{"Room " + strconv.Itoa(b.RoomID) + " does not exist"})
			return b, false
		}
		writeStoreErr(w, err, "room")
		return b, false
	}
	others, err := h.Store.ListBookings(ctx, b.RoomID)
	if err != nil {
		writeStoreErr(w, err, "bookings")
		return b, false
	}
	for _, o := range others {
		if o.BookingID == self {
			continue
		}
		ost, oerrs := validateBooking(o)
		if len(oerrs) == 0 && st.overlaps(ost) {
			writeProblem(w, http.StatusConflict, "Conflict", "room is already booked for these dates")
			return b, false
		}
	}
	return b, true
}
