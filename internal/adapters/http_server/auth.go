package httpserver

import (
	"net/http"

	"restful_booker/internal/domain"
	"restful_booker/internal/randdata"
)

const tokenCookie = "token"

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var c domain.Credentials
	if !decode(w, r, &c) {
		return
	}
	if c != h.Creds {
		writeProblem(w, http.StatusForbidden, "Forbidden", "invalid credentials")
		return
	}
	tok := randdata.AlphaNumeric(domain.TokenLength)
	if err := h.Tokens.Put(r.Context(), tok, h.TokenTTL); err != nil {
		writeStoreErr(w, err, "token")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: tok, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, domain.Token{Token: tok})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	var t domain.Token
	if !decode(w, r, &t) {
		return
	}
	if err := h.Tokens.Delete(r.Context(), t.Token); err != nil {
		writeStoreErr(w, err, "token")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) validate(w http.ResponseWriter, r *http.Request) {
	var t domain.Token
	if !decode(w, r, &t) {
		return
	}
	ok, err := h.Tokens.Valid(r.Context(), t.Token)
	if err != nil {
		writeStoreErr(w, err, "token")
		return
	}
	if !ok {
		writeProblem(w, http.StatusForbidden, "Forbidden", "token is not valid")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// requireToken admits requests whose token cookie names a live session.
func (h *Handlers) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.authorized(r) {
			writeProblem(w, http.StatusForbidden, "Forbidden", "a valid token cookie is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) authorized(r *http.Request) bool {
	c, err := r.Cookie(tokenCookie)
	if err != nil || c.Value == "" {
		return false
	}
	ok, err := h.Tokens.Valid(r.Context(), c.Value)
	return err == nil && ok
}
