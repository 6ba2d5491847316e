package httpserver

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"restful_booker/internal/domain"
)

// Field rules mirror the platform's own checks. Lengths count characters.

func checkLen(errs []string, field, v string, b domain.Bound) []string {
	if n := utf8.RuneCountInString(v); !b.Contains(n) {
		if b.Max == 0 {
			return append(errs, fmt.Sprintf("%s must be at least %d characters", field, b.Min))
		}
		return append(errs, fmt.Sprintf("%s must be between %d and %d characters", field, b.Min, b.Max))
	}
	return errs
}

func checkRange(errs []string, field string, v float64, b domain.FloatBound) []string {
	if !b.Contains(v) {
		return append(errs, fmt.Sprintf("%s must be between %g and %g", field, b.Min, b.Max))
	}
	return errs
}

// checkEmail requires a parseable address of at most total characters whose
// local part fits the bound and whose domain has a dot.
func checkEmail(errs []string, field, v string, local, total domain.Bound) []string {
	if n := utf8.RuneCountInString(v); !total.Contains(n) {
		return append(errs, fmt.Sprintf("%s must be between %d and %d characters", field, total.Min, total.Max))
	}
	at := strings.LastIndex(v, "@")
	if at < 0 {
		return append(errs, field+" must be a well-formed email address")
	}
	if !local.Contains(utf8.RuneCountInString(v[:at])) {
		return append(errs, fmt.Sprintf("%s local part must be between %d and %d characters", field, local.Min, local.Max))
	}
	host := v[at+1:]
	if _, err := mail.ParseAddress(v); err != nil || !strings.Contains(host, ".") || strings.HasSuffix(host, ".") {
		return append(errs, field+" must be a well-formed email address")
	}
	return errs
}

func validateBranding(b domain.Branding) []string {
	lim := domain.BrandingBounds
	var errs []string
	errs = checkLen(errs, "Name", b.Name, lim.Name)
	errs = checkLen(errs, "Description", b.Description, lim.Description)
	errs = checkLen(errs, "Contact name", b.Contact.Name, lim.ContactName)
	errs = checkLen(errs, "Address", b.Contact.Address, lim.Address)
	errs = checkLen(errs, "Phone", b.Contact.Phone, lim.Phone)
	errs = checkLen(errs, "Email", b.Contact.Email, lim.Email)
	errs = checkLen(errs, "Logo URL", b.LogoURL, lim.LogoURL)
	errs = checkRange(errs, "Latitude", b.Map.Latitude, lim.Latitude)
	errs = checkRange(errs, "Longitude", b.Map.Longitude, lim.Longitude)
	return errs
}

func validateMessage(m domain.Message) []string {
	lim := domain.MessageBounds
	var errs []string
	errs = checkLen(errs, "Name", m.Name, lim.Name)
	errs = checkEmail(errs, "Email", m.Email, lim.EmailLocalPart, lim.Email)
	errs = checkLen(errs, "Phone", m.Phone, lim.Phone)
	errs = checkLen(errs, "Subject", m.Subject, lim.Subject)
	errs = checkLen(errs, "Message", m.Description, lim.Description)
	return errs
}

func validateRoom(r domain.Room) []string {
	lim := domain.RoomBounds
	var errs []string
	if r.RoomNumber <= 0 {
		errs = append(errs, "Room number must be greater than 0")
	}
	if !r.Type.Valid() {
		errs = append(errs, "Type must be one of Single, Double, Twin, Family or Suite")
	}
	if !lim.Price.Contains(r.RoomPrice) {
		errs = append(errs, fmt.Sprintf("Room price must be between %d and %d", lim.Price.Min, lim.Price.Max))
	}
	errs = checkLen(errs, "Image", r.Image, lim.Image)
	return errs
}

// parseDay accepts a plain date or an RFC 3339 timestamp.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// stay is the half-open night range [In, Out) of a booking.
type stay struct{ In, Out time.Time }

func (s stay) overlaps(o stay) bool { return s.In.Before(o.Out) && o.In.Before(s.Out) }

func validateBooking(b domain.Booking) (stay, []string) {
	lim := domain.BookingBounds
	var errs []string
	if b.RoomID <= 0 {
		errs = append(errs, "Room id must be greater than 0")
	}
	errs = checkLen(errs, "Firstname", b.Firstname, lim.Firstname)
	errs = checkLen(errs, "Lastname", b.Lastname, lim.Lastname)
	if b.Phone != "" {
		errs = checkLen(errs, "Phone", b.Phone, lim.Phone)
	}
	if b.Email != "" {
		errs = checkEmail(errs, "Email", b.Email, domain.MessageBounds.EmailLocalPart, lim.Email)
	}

	var st stay
	in, inErr := parseDay(b.BookingDates.Checkin)
	out, outErr := parseDay(b.BookingDates.Checkout)
	switch {
	case inErr != nil || outErr != nil:
		errs = append(errs, "Booking dates must be dates (YYYY-MM-DD)")
	case !out.After(in):
		errs = append(errs, "Checkout must be after checkin")
	default:
		st = stay{In: in, Out: out}
	}
	return st, errs
}
