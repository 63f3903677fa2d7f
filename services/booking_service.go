package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"getjoy-backend/client"
	"getjoy-backend/models"
)

// BookingService creates and lists bookings, pricing them from the room
// rate and the destination's flight price at creation time.
type BookingService struct {
	api          *client.Client
	hotels       *HotelService
	destinations *DestinationService
}

func NewBookingService(api *client.Client, hotels *HotelService, destinations *DestinationService) *BookingService {
	return &BookingService{api: api, hotels: hotels, destinations: destinations}
}

// CreateBookingRequest is what the booking form submits. Names and totals
// are resolved server-side, never trusted from the caller.
type CreateBookingRequest struct {
	HotelID       string           `json:"hotelId" binding:"required"`
	DestinationID models.NumericID `json:"destinationId" binding:"required"`

	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`

	RoomType       string `json:"roomType" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required,min=1,max=10"`
	NumberOfRooms  int    `json:"numberOfRooms" binding:"required,min=1,max=5"`

	ArrivalDate   string `json:"arrivalDate" binding:"required"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureDate string `json:"departureDate" binding:"required"`

	IncludeFlight   bool   `json:"includeFlight"`
	FlightType      string `json:"flightType"`
	FreePickup      bool   `json:"freePickup"`
	SpecialRequests string `json:"specialRequests"`
}

const dateLayout = "2006-01-02"

// Create resolves the hotel (for the room rate), the destination (for the
// flight price and denormalized names), prices the stay, and stores the
// booking as confirmed with the booking date stamped at creation.
func (s *BookingService) Create(ctx context.Context, userID models.NumericID, req CreateBookingRequest) (models.Booking, error) {
	hotel, err := s.hotels.GetWithRooms(ctx, req.HotelID)
	if err != nil {
		return models.Booking{}, err
	}
	dest, err := s.destinations.GetByID(ctx, req.DestinationID)
	if err != nil {
		return models.Booking{}, err
	}

	var roomRate float64
	found := false
	for _, r := range hotel.Rooms {
		if r.Type == req.RoomType {
			roomRate = r.Price
			found = true
			break
		}
	}
	if !found {
		return models.Booking{}, fmt.Errorf("room type %q at hotel %s: %w", req.RoomType, req.HotelID, ErrNotFound)
	}

	arrival, err := time.Parse(dateLayout, req.ArrivalDate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("arrival date %q: %w", req.ArrivalDate, ErrInvalidInput)
	}
	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("departure date %q: %w", req.DepartureDate, ErrInvalidInput)
	}

	quote := Price(
		roomRate,
		Nights(arrival, departure),
		req.NumberOfRooms,
		dest.FlightPrice,
		req.NumberOfGuests,
		req.IncludeFlight,
		req.FlightType == models.FlightRoundTrip,
	)

	booking := models.Booking{
		UserID:          userID,
		HotelID:         req.HotelID,
		DestinationID:   req.DestinationID,
		HotelName:       hotel.Name,
		DestinationName: dest.Name,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		RoomType:        req.RoomType,
		NumberOfGuests:  req.NumberOfGuests,
		NumberOfRooms:   req.NumberOfRooms,
		ArrivalDate:     req.ArrivalDate,
		ArrivalTime:     req.ArrivalTime,
		DepartureDate:   req.DepartureDate,
		IncludeFlight:   req.IncludeFlight,
		FlightType:      req.FlightType,
		FreePickup:      req.FreePickup,
		SpecialRequests: req.SpecialRequests,
		RoomTotal:       quote.RoomTotal,
		FlightTotal:     quote.FlightTotal,
		TotalPrice:      quote.TotalPrice,
		BookingDate:     time.Now().UTC().Format(time.RFC3339),
		Status:          models.BookingConfirmed,
	}

	var created models.Booking
	if err := s.api.Create(ctx, "bookings", booking, &created); err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

// ListForUser returns the user's bookings enriched with each hotel's image
// and stars. The hotel fetches fan out in parallel and join by position; a
// hotel that fails to load just leaves that booking without its metadata,
// the list itself still renders.
func (s *BookingService) ListForUser(ctx context.Context, userID models.NumericID) ([]models.BookingView, error) {
	var bookings []models.Booking
	if err := s.api.List(ctx, "bookings", url.Values{"userId": {userID.String()}}, &bookings); err != nil {
		return nil, err
	}

	views := make([]models.BookingView, len(bookings))
	for i, b := range bookings {
		views[i].Booking = b
	}
	if len(bookings) == 0 {
		return views, nil
	}

	var g errgroup.Group
	for i, b := range bookings {
		g.Go(func() error {
			var h models.Hotel
			if err := s.api.Get(ctx, "hotels", b.HotelID, &h); err != nil {
				return nil
			}
			views[i].HotelImage = h.DisplayImage()
			views[i].HotelStars = h.Stars
			return nil
		})
	}
	g.Wait()
	return views, nil
}

// Get fetches one booking; a 404 from the store is ErrNotFound.
func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	if err := s.api.Get(ctx, "bookings", id, &b); err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	return b, nil
}

// Cancel moves a booking to cancelled. That is the only modeled transition;
// cancelling an already-cancelled booking is a no-op. The record is updated
// as a raw document so unknown fields survive.
func (s *BookingService) Cancel(ctx context.Context, id string) (models.Booking, error) {
	var doc map[string]any
	if err := s.api.Get(ctx, "bookings", id, &doc); err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	if status, _ := doc["status"].(string); status == models.BookingCancelled {
		return s.Get(ctx, id)
	}

	doc["status"] = models.BookingCancelled
	var updated models.Booking
	if err := s.api.Update(ctx, "bookings", id, doc, &updated); err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}

// Delete removes a booking outright. No UI flow uses it, but the store
// endpoint exists and the surface mirrors it.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	err := s.api.Delete(ctx, "bookings", id)
	if client.IsStatus(err, http.StatusNotFound) {
		return ErrNotFound
	}
	return err
}
