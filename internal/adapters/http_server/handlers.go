package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"restful_booker/internal/domain"
)

type Handlers struct {
	Store  domain.Store
	Tokens domain.TokenStore
	Creds  domain.Credentials

	// TokenTTL bounds a session; zero keeps tokens until logout.
	TokenTTL time.Duration
	// LoginRPS limits /auth/login; zero disables the limit.
	LoginRPS int
}

type problem struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/auth", func(r chi.Router) {
		r.With(RateLimit(h.LoginRPS)).Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/validate", h.validate)
	})

	s.mux.Get("/branding", h.getBranding)
	s.mux.With(h.requireToken).Put("/branding", h.putBranding)

	s.mux.Get("/report", h.reportAll)
	s.mux.Get("/report/room/{id}", h.reportRoom)

	s.mux.Route("/message", func(r chi.Router) {
		r.Get("/", h.listMessages)
		r.Post("/", h.createMessage)
		r.Get("/count", h.countMessages)
		r.Get("/{id}", h.getMessage)
		r.With(h.requireToken).Put("/{id}/read", h.markRead)
		r.With(h.requireToken).Delete("/{id}/delete", h.deleteMessage)
	})

	s.mux.Route("/room", func(r chi.Router) {
		r.Get("/", h.listRooms)
		r.With(h.requireToken).Post("/", h.createRoom)
		r.Get("/{id}", h.getRoom)
		r.With(h.requireToken).Put("/{id}", h.updateRoom)
		r.With(h.requireToken).Delete("/{id}", h.deleteRoom)
	})

	s.mux.Route("/booking", func(r chi.Router) {
		r.Get("/", h.listBookings)
		r.With(h.requireToken).Post("/", h.createBooking)
		r.Get("/{id}", h.getBooking)
		r.With(h.requireToken).Put("/{id}", h.updateBooking)
		r.With(h.requireToken).Delete("/{id}", h.deleteBooking)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

// writeInvalid answers 400 with one entry per failed field rule.
func writeInvalid(w http.ResponseWriter, errs []string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: "Bad Request", Status: http.StatusBadRequest, Errors: errs})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response body")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// writeStoreErr maps store failures; not found is 404, anything else 500.
func writeStoreErr(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", what+" not found")
		return
	}
	log.Error().Err(err).Str("resource", what).Msg("store failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be valid JSON")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return id, true
}
