package httpserver

import (
	"net/http"

	"restful_booker/internal/domain"
)

func (h *Handlers) listMessages(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Store.ListMessages(r.Context())
	if err != nil {
		writeStoreErr(w, err, "messages")
		return
	}
	out := make([]domain.MessageSummary, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.MessageSummary{MessageID: m.MessageID, Name: m.Name, Subject: m.Subject, Read: m.Read})
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": out})
}

// createMessage is open to guests; the posted messageid is ignored.
func (h *Handlers) createMessage(w http.ResponseWriter, r *http.Request) {
	var m domain.Message
	if !decode(w, r, &m) {
		return
	}
	if errs := validateMessage(m); len(errs) > 0 {
		writeInvalid(w, errs)
		return
	}
	saved, err := h.Store.CreateMessage(r.Context(), m)
	if err != nil {
		writeStoreErr(w, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) countMessages(w http.ResponseWriter, r *http.Request) {
	n, err := h.Store.CountUnread(r.Context())
	if err != nil {
		writeStoreErr(w, err, "messages")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Handlers) getMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.Store.GetMessage(r.Context(), id)
	if err != nil {
		writeStoreErr(w, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) markRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Store.MarkMessageRead(r.Context(), id); err != nil {
		writeStoreErr(w, err, "message")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Store.DeleteMessage(r.Context(), id); err != nil {
		writeStoreErr(w, err, "message")
		return
	}
	w.WriteHeader(http.StatusOK)
}
