package models

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"

	FlightOneWay    = "oneWay"
	FlightRoundTrip = "roundTrip"
)

// Booking is one bookings record. Hotel and destination names are
// denormalized onto it at creation time so the list view doesn't depend on
// the reference data still existing.
type Booking struct {
	ID              string    `json:"id,omitempty"`
	UserID          NumericID `json:"userId"`
	HotelID         string    `json:"hotelId"`
	DestinationID   NumericID `json:"destinationId"`
	HotelName       string    `json:"hotelName"`
	DestinationName string    `json:"destinationName"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	RoomType       string `json:"roomType"`
	NumberOfGuests int    `json:"numberOfGuests"`
	NumberOfRooms  int    `json:"numberOfRooms"`

	ArrivalDate   string `json:"arrivalDate"`   // ISO date, e.g. 2024-01-01
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	DepartureDate string `json:"departureDate"`

	IncludeFlight   bool   `json:"includeFlight"`
	FlightType      string `json:"flightType,omitempty"` // oneWay or roundTrip
	FreePickup      bool   `json:"freePickup"`
	SpecialRequests string `json:"specialRequests,omitempty"`

	RoomTotal   float64 `json:"roomTotal"`
	FlightTotal float64 `json:"flightTotal"`
	TotalPrice  float64 `json:"totalPrice"`

	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
}

// BookingView is a booking enriched with hotel display metadata for lists.
type BookingView struct {
	Booking
	HotelImage string `json:"hotelImage,omitempty"`
	HotelStars int    `json:"hotelStars,omitempty"`
}
