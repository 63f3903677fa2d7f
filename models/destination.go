package models

// DefaultDestinationImage is shown when a destination record has neither the
// current imageUrl field nor the legacy image field.
const DefaultDestinationImage = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

// Destination is the wire shape of one destinations record. Older records
// use image/country where newer ones use imageUrl/location; both are kept so
// either vintage round-trips untouched.
type Destination struct {
	ID          NumericID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Image       string    `json:"image,omitempty"` // legacy field
	Location    string    `json:"location,omitempty"`
	Country     string    `json:"country,omitempty"` // legacy field
	Price       float64   `json:"price,omitempty"`
	FlightPrice float64   `json:"flightPrice,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Likes       int       `json:"likes"`
}

// DisplayImage merges the current and legacy image fields: current wins,
// then legacy, then the fixed placeholder.
func (d Destination) DisplayImage() string {
	if d.ImageURL != "" {
		return d.ImageURL
	}
	if d.Image != "" {
		return d.Image
	}
	return DefaultDestinationImage
}

// DisplayLocation merges location/country the same way.
func (d Destination) DisplayLocation() string {
	if d.Location != "" {
		return d.Location
	}
	if d.Country != "" {
		return d.Country
	}
	return "Unknown"
}

// DestinationView is the denormalized shape handed to presentation: legacy
// fields collapsed, like status attached.
type DestinationView struct {
	ID          NumericID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location"`
	Price       float64   `json:"price,omitempty"`
	FlightPrice float64   `json:"flightPrice,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Likes       int       `json:"likes"`
	IsLiked     bool      `json:"isLiked"`
}

func (d Destination) View() DestinationView {
	return DestinationView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.DisplayImage(),
		Location:    d.DisplayLocation(),
		Price:       d.Price,
		FlightPrice: d.FlightPrice,
		Rating:      d.Rating,
		Likes:       d.Likes,
	}
}
