package fixtures

import (
	"fmt"
	"net/http"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/domain"
)

// BrandingFromBounds derives the branding length fixtures from bound
// definitions: one entry at every edge, one just outside it.
func BrandingFromBounds(l domain.BrandingLimits) (valid, invalid []Branding) {
	fields := []struct {
		name  string
		bound domain.Bound
		opt   func(int) booker.BrandingOption
	}{
		{"name", l.Name, booker.BrandingNameLen},
		{"description", l.Description, booker.BrandingDescriptionLen},
		{"contact name", l.ContactName, booker.BrandingContactNameLen},
		{"address", l.Address, booker.BrandingAddressLen},
	}
	var lo, hi []booker.BrandingOption
	for _, f := range fields {
		lo = append(lo, f.opt(f.bound.Min))
		hi = append(hi, f.opt(f.bound.Max))
	}
	lo = append(lo, booker.BrandingLatitude(0), booker.BrandingLongitude(0))
	hi = append(hi, booker.BrandingLatitude(l.Latitude.Max), booker.BrandingLongitude(l.Longitude.Max))
	valid = []Branding{
		{Name: "all minimums", Options: lo, WantStatus: http.StatusOK},
		{Name: "all maximums", Options: hi, WantStatus: http.StatusOK},
	}
	for _, edge := range []func(domain.Bound) int{
		func(b domain.Bound) int { return b.Min - 1 },
		func(b domain.Bound) int { return b.Max + 1 },
	} {
		for _, f := range fields {
			n := edge(f.bound)
			invalid = append(invalid, Branding{
				Name:       fmt.Sprintf("%s length %d", f.name, n),
				Options:    []booker.BrandingOption{f.opt(n)},
				WantStatus: http.StatusBadRequest,
			})
		}
	}
	invalid = append(invalid, Branding{
		Name:       fmt.Sprintf("phone length %d", l.Phone.Max+1),
		Options:    []booker.BrandingOption{booker.BrandingPhoneLen(l.Phone.Max + 1)},
		WantStatus: http.StatusBadRequest,
	})
	return valid, invalid
}

// MessageFromBounds derives the message fixtures. The email local part is
// held at its maximum in both valid entries.
func MessageFromBounds(l domain.MessageLimits) (valid, invalid []Message) {
	valid = []Message{
		{
			Name: "minimums",
			Options: []booker.MessageOption{
				booker.MessageDescriptionLen(l.Description.Min), booker.MessageEmailLocalLen(l.EmailLocalPart.Max),
				booker.MessagePhoneLen(l.Phone.Min), booker.MessageSubjectLen(l.Subject.Min),
			},
			WantStatus: http.StatusOK,
		},
		{
			Name: "maximums",
			Options: []booker.MessageOption{
				booker.MessageDescriptionLen(l.Description.Max), booker.MessageEmailLocalLen(l.EmailLocalPart.Max),
				booker.MessagePhoneLen(l.Phone.Max), booker.MessageSubjectLen(l.Subject.Max),
			},
			WantStatus: http.StatusOK,
		},
	}
	bad := func(field string, n int, opt func(int) booker.MessageOption) Message {
		return Message{
			Name:       fmt.Sprintf("%s %d", field, n),
			Options:    []booker.MessageOption{opt(n)},
			WantStatus: http.StatusBadRequest,
		}
	}
	invalid = []Message{
		bad("description length", l.Description.Min-1, booker.MessageDescriptionLen),
		bad("description length", l.Description.Max+1, booker.MessageDescriptionLen),
		bad("email local part", l.EmailLocalPart.Max+1, booker.MessageEmailLocalLen),
		bad("email local part", l.EmailLocalPart.Min-1, booker.MessageEmailLocalLen),
		bad("name length", l.Name.Min-1, booker.MessageNameLen),
		bad("phone length", l.Phone.Min-1, booker.MessagePhoneLen),
		bad("phone length", l.Phone.Max+1, booker.MessagePhoneLen),
		bad("subject length", l.Subject.Min-1, booker.MessageSubjectLen),
		bad("subject length", l.Subject.Max+1, booker.MessageSubjectLen),
	}
	return valid, invalid
}

// MessageSpecs applies each fixture's options to the default message spec,
// for comparing fixture sets without generating payloads.
func MessageSpecs(ms []Message) []booker.MessageSpec {
	out := make([]booker.MessageSpec, 0, len(ms))
	for _, m := range ms {
		s := booker.DefaultMessageSpec()
		for _, o := range m.Options {
			o(&s)
		}
		out = append(out, s)
	}
	return out
}

// BrandingSpecs is MessageSpecs for branding fixtures.
func BrandingSpecs(bs []Branding) []booker.BrandingSpec {
	out := make([]booker.BrandingSpec, 0, len(bs))
	for _, b := range bs {
		s := booker.DefaultBrandingSpec()
		for _, o := range b.Options {
			o(&s)
		}
		out = append(out, s)
	}
	return out
}
