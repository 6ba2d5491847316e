package booker

import (
	"restful_booker/internal/domain"
	"restful_booker/internal/randdata"
)

// Payload builders. Each call starts from a fresh spec, so random defaults
// (room number, price, type, every generated string) differ per call.

// DefaultImageURL is used for logos and room images.
const DefaultImageURL = "https://commons.wikimedia.org/wiki/File:Python-logo-notext.svg"

// ---- branding ----

// BrandingSpec drives NewBranding. Lengths are character counts of the
// generated values.
type BrandingSpec struct {
	NameLength        int // default 10
	Latitude          float64
	Longitude         float64
	LogoURL           string
	DescriptionLength int // default 10
	ContactNameLength int // default 10
	AddressLength     int // default 20
	PhoneLength       int // default 11
	EmailLength       int // default 1
}

func DefaultBrandingSpec() BrandingSpec {
	return BrandingSpec{
		NameLength:        10,
		Latitude:          45,
		Longitude:         90,
		LogoURL:           DefaultImageURL,
		DescriptionLength: 10,
		ContactNameLength: 10,
		AddressLength:     20,
		PhoneLength:       11,
		EmailLength:       1,
	}
}

type BrandingOption func(*BrandingSpec)

func BrandingNameLen(n int) BrandingOption        { return func(s *BrandingSpec) { s.NameLength = n } }
func BrandingLatitude(v float64) BrandingOption   { return func(s *BrandingSpec) { s.Latitude = v } }
func BrandingLongitude(v float64) BrandingOption  { return func(s *BrandingSpec) { s.Longitude = v } }
func BrandingDescriptionLen(n int) BrandingOption { return func(s *BrandingSpec) { s.DescriptionLength = n } }
func BrandingContactNameLen(n int) BrandingOption { return func(s *BrandingSpec) { s.ContactNameLength = n } }
func BrandingAddressLen(n int) BrandingOption     { return func(s *BrandingSpec) { s.AddressLength = n } }
func BrandingPhoneLen(n int) BrandingOption       { return func(s *BrandingSpec) { s.PhoneLength = n } }
func BrandingEmailLen(n int) BrandingOption       { return func(s *BrandingSpec) { s.EmailLength = n } }

func NewBranding(opts ...BrandingOption) domain.Branding {
	s := DefaultBrandingSpec()
	for _, o := range opts {
		o(&s)
	}
	return domain.Branding{
		Name:        randdata.Alpha(s.NameLength),
		Map:         domain.Map{Latitude: s.Latitude, Longitude: s.Longitude},
		LogoURL:     s.LogoURL,
		Description: randdata.Alpha(s.DescriptionLength),
		Contact: domain.Contact{
			Name:    randdata.Alpha(s.ContactNameLength),
			Address: randdata.AlphaNumeric(s.AddressLength),
			Phone:   randdata.Numeric(s.PhoneLength),
			Email:   randdata.AlphaNumeric(s.EmailLength),
		},
	}
}

// ---- message ----

type MessageSpec struct {
	DescriptionLength    int // default 100
	EmailLocalPartLength int // default 10
	EmailDomainLength    int // default 5
	MessageID            int // default 2
	NameLength           int // default 10
	PhoneLength          int // default 11
	SubjectLength        int // default 10
}

func DefaultMessageSpec() MessageSpec {
	return MessageSpec{
		DescriptionLength:    100,
		EmailLocalPartLength: 10,
		EmailDomainLength:    5,
		MessageID:            2,
		NameLength:           10,
		PhoneLength:          11,
		SubjectLength:        10,
	}
}

type MessageOption func(*MessageSpec)

func MessageDescriptionLen(n int) MessageOption { return func(s *MessageSpec) { s.DescriptionLength = n } }
func MessageEmailLocalLen(n int) MessageOption  { return func(s *MessageSpec) { s.EmailLocalPartLength = n } }
func MessageEmailDomainLen(n int) MessageOption { return func(s *MessageSpec) { s.EmailDomainLength = n } }
func MessageID(id int) MessageOption            { return func(s *MessageSpec) { s.MessageID = id } }
func MessageNameLen(n int) MessageOption        { return func(s *MessageSpec) { s.NameLength = n } }
func MessagePhoneLen(n int) MessageOption       { return func(s *MessageSpec) { s.PhoneLength = n } }
func MessageSubjectLen(n int) MessageOption     { return func(s *MessageSpec) { s.SubjectLength = n } }

func NewMessage(opts ...MessageOption) domain.Message {
	s := DefaultMessageSpec()
	for _, o := range opts {
		o(&s)
	}
	return domain.Message{
		MessageID:   s.MessageID,
		Description: randdata.AlphaNumeric(s.DescriptionLength),
		Email:       randdata.Email(s.EmailLocalPartLength, s.EmailDomainLength),
		Name:        randdata.Alpha(s.NameLength),
		Phone:       randdata.Numeric(s.PhoneLength),
		Subject:     randdata.Alpha(s.SubjectLength),
	}
}

// ---- room ----

type RoomSpec struct {
	Accessible        bool // default true
	DescriptionLength int  // default 100
	FeatureLength     int  // default 10
	RoomNumber        int  // default random 5..100
	RoomPrice         int  // default random 0..999
	Type              domain.RoomType
	Image             string
}

// DefaultRoomSpec draws a new room number, price and type on every call.
func DefaultRoomSpec() RoomSpec {
	return RoomSpec{
		Accessible:        true,
		DescriptionLength: 100,
		FeatureLength:     10,
		RoomNumber:        randdata.IntBetween(5, 100),
		RoomPrice:         randdata.IntBetween(0, 999),
		Type:              randdata.Pick(domain.RoomTypes),
		Image:             DefaultImageURL,
	}
}

type RoomOption func(*RoomSpec)

func RoomAccessible(v bool) RoomOption        { return func(s *RoomSpec) { s.Accessible = v } }
func RoomDescriptionLen(n int) RoomOption     { return func(s *RoomSpec) { s.DescriptionLength = n } }
func RoomFeatureLen(n int) RoomOption         { return func(s *RoomSpec) { s.FeatureLength = n } }
func RoomNumber(n int) RoomOption             { return func(s *RoomSpec) { s.RoomNumber = n } }
func RoomPrice(p int) RoomOption              { return func(s *RoomSpec) { s.RoomPrice = p } }
func RoomOfType(t domain.RoomType) RoomOption { return func(s *RoomSpec) { s.Type = t } }

func NewRoom(opts ...RoomOption) domain.Room {
	s := DefaultRoomSpec()
	for _, o := range opts {
		o(&s)
	}
	return domain.Room{
		RoomID:      0,
		RoomNumber:  s.RoomNumber,
		Type:        s.Type,
		Accessible:  s.Accessible,
		Image:       s.Image,
		Description: randdata.Alpha(s.DescriptionLength),
		Features:    []string{randdata.Alpha(s.FeatureLength)},
		RoomPrice:   s.RoomPrice,
	}
}

// ---- booking ----

type BookingSpec struct {
	DepositPaid          bool // default true
	EmailLocalPartLength int  // default 10
	EmailDomainLength    int  // default 5
	FirstnameLength      int  // default 5
	LastnameLength       int  // default 5
	PhoneLength          int  // default 11
}

func DefaultBookingSpec() BookingSpec {
	return BookingSpec{
		DepositPaid:          true,
		EmailLocalPartLength: 10,
		EmailDomainLength:    5,
		FirstnameLength:      5,
		LastnameLength:       5,
		PhoneLength:          11,
	}
}

type BookingOption func(*BookingSpec)

func BookingDeposit(paid bool) BookingOption    { return func(s *BookingSpec) { s.DepositPaid = paid } }
func BookingEmailLocalLen(n int) BookingOption  { return func(s *BookingSpec) { s.EmailLocalPartLength = n } }
func BookingEmailDomainLen(n int) BookingOption { return func(s *BookingSpec) { s.EmailDomainLength = n } }
func BookingFirstnameLen(n int) BookingOption   { return func(s *BookingSpec) { s.FirstnameLength = n } }
func BookingLastnameLen(n int) BookingOption    { return func(s *BookingSpec) { s.LastnameLength = n } }
func BookingPhoneLen(n int) BookingOption       { return func(s *BookingSpec) { s.PhoneLength = n } }

func NewBooking(checkin, checkout string, roomID int, opts ...BookingOption) domain.Booking {
	s := DefaultBookingSpec()
	for _, o := range opts {
		o(&s)
	}
	return domain.Booking{
		BookingID:    0,
		RoomID:       roomID,
		Firstname:    randdata.Alpha(s.FirstnameLength),
		Lastname:     randdata.Alpha(s.LastnameLength),
		DepositPaid:  s.DepositPaid,
		Email:        randdata.Email(s.EmailLocalPartLength, s.EmailDomainLength),
		Phone:        randdata.Numeric(s.PhoneLength),
		BookingDates: domain.BookingDates{Checkin: checkin, Checkout: checkout},
	}
}
