package models

// Room is one rooms record. Price is per night.
type Room struct {
	ID       string  `json:"id"`
	HotelID  string  `json:"hotelId"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity,omitempty"`
}
