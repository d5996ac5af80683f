package models

// Ticket prices are fixed for the whole storefront, in dollars.
const (
	NormalTicketPrice = 50
	VIPTicketPrice    = 100
)

// GenreColor is the badge color an event is rendered with.
type GenreColor string

const (
	ColorBlue   GenreColor = "blue"
	ColorGreen  GenreColor = "green"
	ColorPurple GenreColor = "purple"
	ColorYellow GenreColor = "yellow"
)

// Valid reports whether the color is one of the supported badge colors.
func (c GenreColor) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorPurple, ColorYellow:
		return true
	}
	return false
}

// Intensity describes how demanding an event is on the audience.
type Intensity string

const (
	IntensityChill    Intensity = "chill"
	IntensityHardcore Intensity = "hardcore"
	IntensityMixed    Intensity = "mixed"
)

// Valid reports whether the intensity is one of the supported values.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityChill, IntensityHardcore, IntensityMixed:
		return true
	}
	return false
}

// AvailableGenres is the fixed genre vocabulary of the catalog.
var AvailableGenres = []string{"Rock", "Pop", "Drum & Bass", "Techno"}

// ValidGenre reports whether genre belongs to the fixed vocabulary.
func ValidGenre(genre string) bool {
	for _, g := range AvailableGenres {
		if g == genre {
			return true
		}
	}
	return false
}

// Defaults applied when an event draft leaves genre fields unset.
const (
	DefaultGenre      = "Rock"
	DefaultGenreColor = ColorBlue
	DefaultIntensity  = IntensityChill
)

// Event represents a catalog event available for browsing and purchase.
type Event struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	FullDescription  string     `json:"full_description"`
	Genre            string     `json:"genre"`
	GenreColor       GenreColor `json:"genre_color"`
	Intensity        Intensity  `json:"intensity"`
}

// CartLineItem aggregates ticket quantities for one event. Title and prices
// are snapshots taken at add time, so later catalog edits or deletes do not
// change what the cart displays or charges.
type CartLineItem struct {
	EventID       int64  `json:"event_id"`
	EventTitle    string `json:"event_title"`
	NormalTickets int    `json:"normal_tickets"`
	VIPTickets    int    `json:"vip_tickets"`
	NormalPrice   int    `json:"normal_price"`
	VIPPrice      int    `json:"vip_price"`
}

// Quantity returns the total ticket count of the line item.
func (li CartLineItem) Quantity() int {
	return li.NormalTickets + li.VIPTickets
}

// LineTotal returns the price of the line item.
func (li CartLineItem) LineTotal() int {
	return li.NormalTickets*li.NormalPrice + li.VIPTickets*li.VIPPrice
}

// UserProfile represents the logged-in user. Email is immutable after login;
// Tickets is only ever appended to by checkout.
type UserProfile struct {
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	Location        string            `json:"location"`
	City            string            `json:"city,omitempty"`
	ZipCode         string            `json:"zip_code,omitempty"`
	PreferredGenres []string          `json:"preferred_genres"`
	Tickets         []PurchasedTicket `json:"tickets"`
}

// PurchasedTicket is an immutable purchase record created by checkout.
// There is no refund or cancel operation, so tickets are never removed.
type PurchasedTicket struct {
	ID            string `json:"id"`
	EventID       int64  `json:"event_id"`
	EventTitle    string `json:"event_title"`
	NormalTickets int    `json:"normal_tickets"`
	VIPTickets    int    `json:"vip_tickets"`
	PurchaseDate  string `json:"purchase_date"`
	TotalPrice    int    `json:"total_price"`
}
