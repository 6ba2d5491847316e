package domain

// Credentials is the login body for /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is both the login response and the logout/validate request body.
type Token struct {
	Token string `json:"token"`
}

// TokenLength is the length of tokens issued by /auth/login.
const TokenLength = 16

type Map struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Contact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Branding struct {
	Name        string  `json:"name"`
	Map         Map     `json:"map"`
	LogoURL     string  `json:"logoUrl"`
	Description string  `json:"description"`
	Contact     Contact `json:"contact"`
}

type Message struct {
	MessageID   int    `json:"messageid"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Read        bool   `json:"read,omitempty"`
}

// MessageSummary is the list view returned by GET /message/.
type MessageSummary struct {
	MessageID int    `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Read      bool   `json:"read"`
}

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomTwin   RoomType = "Twin"
	RoomFamily RoomType = "Family"
	RoomSuite  RoomType = "Suite"
)

var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomTwin, RoomFamily, RoomSuite}

func (t RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if t == rt {
			return true
		}
	}
	return false
}

type Room struct {
	RoomID      int      `json:"roomid"`
	RoomNumber  int      `json:"roomNumber"`
	Type        RoomType `json:"type"`
	Accessible  bool     `json:"accessible"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	RoomPrice   int      `json:"roomPrice"`
}

// BookingDates carries check-in/check-out timestamps as sent on the wire.
type BookingDates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

type Booking struct {
	BookingID    int          `json:"bookingid"`
	RoomID       int          `json:"roomid"`
	Firstname    string       `json:"firstname"`
	Lastname     string       `json:"lastname"`
	DepositPaid  bool         `json:"depositpaid"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	BookingDates BookingDates `json:"bookingdates"`
}

// ReportEntry is one calendar entry of GET /report/.
type ReportEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}
