package models

const DefaultHotelImage = "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

// Hotel is the wire shape of one hotels record. Rooms are never stored on
// the hotel; they live in the rooms collection keyed by hotelId and get
// joined in by the hotel service.
type Hotel struct {
	ID            string    `json:"id"`
	DestinationID NumericID `json:"destinationId"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Stars         int       `json:"stars,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Image         string    `json:"image,omitempty"` // legacy field
	Likes         int       `json:"likes"`
}

func (h Hotel) DisplayImage() string {
	if h.ImageURL != "" {
		return h.ImageURL
	}
	if h.Image != "" {
		return h.Image
	}
	return DefaultHotelImage
}

// HotelView is a hotel with its rooms attached and like status resolved.
type HotelView struct {
	ID            string    `json:"id"`
	DestinationID NumericID `json:"destinationId"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Stars         int       `json:"stars,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	Likes         int       `json:"likes"`
	IsLiked       bool      `json:"isLiked"`
	Rooms         []Room    `json:"rooms"`
}

func (h Hotel) View(rooms []Room) HotelView {
	if rooms == nil {
		rooms = []Room{}
	}
	return HotelView{
		ID:            h.ID,
		DestinationID: h.DestinationID,
		Name:          h.Name,
		Address:       h.Address,
		Stars:         h.Stars,
		ImageURL:      h.DisplayImage(),
		Likes:         h.Likes,
		Rooms:         rooms,
	}
}
