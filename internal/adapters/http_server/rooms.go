package httpserver

import (
	"net/http"

	"restful_booker/internal/domain"
)

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Store.ListRooms(r.Context())
	if err != nil {
		writeStoreErr(w, err, "rooms")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Room{"rooms": rooms})
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var rm domain.Room
	if !decode(w, r, &rm) {
		return
	}
	if errs := validateRoom(rm); len(errs) > 0 {
		writeInvalid(w, errs)
		return
	}
	saved, err := h.Store.CreateRoom(r.Context(), rm)
	if err != nil {
		writeStoreErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rm, err := h.Store.GetRoom(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var rm domain.Room
	if !decode(w, r, &rm) {
		return
	}
	if errs := validateRoom(rm); len(errs) > 0 {
		writeInvalid(w, errs)
		return
	}
	saved, err := h.Store.UpdateRoom(r.Context(), id, rm)
	if err != nil {
		writeStoreErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteRoom(r.Context(), id); err != nil {
		writeStoreErr(w, err, "room")
		return
	}
	w.WriteHeader(http.StatusOK)
}
