package httpserver

import (
	"net/http"

	"restful_booker/internal/domain"
)

func (h *Handlers) getBranding(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetBranding(r.Context())
	if err != nil {
		writeStoreErr(w, err, "branding")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) putBranding(w http.ResponseWriter, r *http.Request) {
	var b domain.Branding
	if !decode(w, r, &b) {
		return
	}
	if errs := validateBranding(b); len(errs) > 0 {
		writeInvalid(w, errs)
		return
	}
	if err := h.Store.PutBranding(r.Context(), b); err != nil {
		writeStoreErr(w, err, "branding")
		return
	}
	writeJSON(w, http.StatusOK, b)
}
