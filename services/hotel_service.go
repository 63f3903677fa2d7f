package services

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"getjoy-backend/client"
	"getjoy-backend/models"
)

// HotelService joins hotels with their rooms. The store keeps rooms in
// their own collection keyed by hotelId, so the join is ours to do.
type HotelService struct {
	api *client.Client
}

func NewHotelService(api *client.Client) *HotelService {
	return &HotelService{api: api}
}

// GetWithRooms fetches one hotel and attaches its rooms. A missing hotel is
// ErrNotFound, not a transport error.
func (s *HotelService) GetWithRooms(ctx context.Context, hotelID string) (models.HotelView, error) {
	var h models.Hotel
	if err := s.api.Get(ctx, "hotels", hotelID, &h); err != nil {
		if client.IsStatus(err, http.StatusNotFound) {
			return models.HotelView{}, ErrNotFound
		}
		return models.HotelView{}, err
	}
	rooms, err := s.Rooms(ctx, hotelID)
	if err != nil {
		return models.HotelView{}, err
	}
	return h.View(rooms), nil
}

// Rooms lists the rooms whose hotelId matches. Rooms referencing a hotel
// that doesn't exist simply never show up anywhere; the filter is the join.
func (s *HotelService) Rooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.api.List(ctx, "rooms", url.Values{"hotelId": {hotelID}}, &rooms)
	return rooms, err
}

func (s *HotelService) hotelsForDestination(ctx context.Context, destinationID models.NumericID) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.api.List(ctx, "hotels", url.Values{"destinationId": {destinationID.String()}}, &hotels)
	return hotels, err
}

// ListForDestination fetches the destination's hotels, then fans out one
// rooms fetch per hotel in parallel. Results join by position, so the output
// keeps the store's hotel order no matter which fetch finishes first. An
// empty hotel list returns immediately without any fan-out.
func (s *HotelService) ListForDestination(ctx context.Context, destinationID models.NumericID) ([]models.HotelView, error) {
	hotels, err := s.hotelsForDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return []models.HotelView{}, nil
	}

	views := make([]models.HotelView, len(hotels))
	g, ctx := errgroup.WithContext(ctx)
	for i, h := range hotels {
		g.Go(func() error {
			rooms, err := s.Rooms(ctx, h.ID)
			if err != nil {
				return err
			}
			views[i] = h.View(rooms)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}
