// Package fixtures enumerates boundary-value inputs for branding and message
// writes. Each entry overrides a few fields and leaves the rest at the
// builder defaults.
package fixtures

import (
	"net/http"

	"restful_booker/internal/adapters/booker"
)

type Branding struct {
	Name       string
	Options    []booker.BrandingOption
	WantStatus int
}

type Message struct {
	Name       string
	Options    []booker.MessageOption
	WantStatus int
}

// ValidBranding covers the minimum and maximum accepted lengths together.
func ValidBranding() []Branding {
	return []Branding{
		{
			Name: "all minimums",
			Options: []booker.BrandingOption{
				booker.BrandingNameLen(3), booker.BrandingLatitude(0), booker.BrandingLongitude(0),
				booker.BrandingDescriptionLen(3), booker.BrandingContactNameLen(3), booker.BrandingAddressLen(10),
			},
			WantStatus: http.StatusOK,
		},
		{
			Name: "all maximums",
			Options: []booker.BrandingOption{
				booker.BrandingNameLen(100), booker.BrandingLatitude(90), booker.BrandingLongitude(180),
				booker.BrandingDescriptionLen(500), booker.BrandingContactNameLen(40), booker.BrandingAddressLen(200),
			},
			WantStatus: http.StatusOK,
		},
	}
}

// InvalidBranding moves one field one unit past its bound.
func InvalidBranding() []Branding {
	bad := func(name string, o booker.BrandingOption) Branding {
		return Branding{Name: name, Options: []booker.BrandingOption{o}, WantStatus: http.StatusBadRequest}
	}
	return []Branding{
		bad("name length 2", booker.BrandingNameLen(2)),
		bad("description length 2", booker.BrandingDescriptionLen(2)),
		bad("contact name length 2", booker.BrandingContactNameLen(2)),
		bad("address length 9", booker.BrandingAddressLen(9)),
		bad("name length 101", booker.BrandingNameLen(101)),
		bad("description length 501", booker.BrandingDescriptionLen(501)),
		bad("contact name length 41", booker.BrandingContactNameLen(41)),
		bad("address length 201", booker.BrandingAddressLen(201)),
		// unbounded phone input used to reach the database unchecked
		bad("phone length 16", booker.BrandingPhoneLen(16)),
	}
}

func ValidMessage() []Message {
	return []Message{
		{
			Name: "minimums",
			Options: []booker.MessageOption{
				booker.MessageDescriptionLen(20), booker.MessageEmailLocalLen(64),
				booker.MessagePhoneLen(11), booker.MessageSubjectLen(5),
			},
			WantStatus: http.StatusOK,
		},
		{
			Name: "maximums",
			Options: []booker.MessageOption{
				booker.MessageDescriptionLen(2000), booker.MessageEmailLocalLen(64),
				booker.MessagePhoneLen(21), booker.MessageSubjectLen(100),
			},
			WantStatus: http.StatusOK,
		},
	}
}

func InvalidMessage() []Message {
	bad := func(name string, o booker.MessageOption) Message {
		return Message{Name: name, Options: []booker.MessageOption{o}, WantStatus: http.StatusBadRequest}
	}
	return []Message{
		bad("description length 19", booker.MessageDescriptionLen(19)),
		bad("description length 2001", booker.MessageDescriptionLen(2001)),
		bad("email local part 65", booker.MessageEmailLocalLen(65)),
		bad("email local part 0", booker.MessageEmailLocalLen(0)),
		bad("name length 0", booker.MessageNameLen(0)),
		bad("phone length 10", booker.MessagePhoneLen(10)),
		bad("phone length 22", booker.MessagePhoneLen(22)),
		bad("subject length 4", booker.MessageSubjectLen(4)),
		bad("subject length 101", booker.MessageSubjectLen(101)),
	}
}
