package domain

// Bound is an inclusive length or range constraint. Max 0 means unbounded.
type Bound struct{ Min, Max int }

func (b Bound) Contains(n int) bool {
	return n >= b.Min && (b.Max == 0 || n <= b.Max)
}

// FloatBound is an inclusive range for coordinates.
type FloatBound struct{ Min, Max float64 }

func (b FloatBound) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

type BrandingLimits struct {
	Name        Bound
	Description Bound
	ContactName Bound
	Address     Bound
	Phone       Bound
	Email       Bound
	LogoURL     Bound
	Latitude    FloatBound
	Longitude   FloatBound
}

type MessageLimits struct {
	Name           Bound
	EmailLocalPart Bound
	Email          Bound
	Phone          Bound
	Subject        Bound
	Description    Bound
}

type RoomLimits struct {
	Price Bound
	Image Bound
}

type BookingLimits struct {
	Firstname Bound
	Lastname  Bound
	Phone     Bound
	Email     Bound
}

// Server-side field bounds of the booking platform.
var (
	BrandingBounds = BrandingLimits{
		Name:        Bound{3, 100},
		Description: Bound{3, 500},
		ContactName: Bound{3, 40},
		Address:     Bound{10, 200},
		Phone:       Bound{1, 15},
		Email:       Bound{0, 255},
		LogoURL:     Bound{0, 512},
		Latitude:    FloatBound{-90, 90},
		Longitude:   FloatBound{-180, 180},
	}

	MessageBounds = MessageLimits{
		Name:           Bound{1, 100},
		EmailLocalPart: Bound{1, 64},
		Email:          Bound{3, 255},
		Phone:          Bound{11, 21},
		Subject:        Bound{5, 100},
		Description:    Bound{20, 2000},
	}

	RoomBounds = RoomLimits{
		Price: Bound{0, 999},
		Image: Bound{0, 512},
	}

	BookingBounds = BookingLimits{
		Firstname: Bound{3, 18},
		Lastname:  Bound{3, 30},
		Phone:     Bound{11, 21},
		Email:     Bound{3, 255},
	}
)
