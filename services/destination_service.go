package services

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"getjoy-backend/client"
	"getjoy-backend/models"
)

// DestinationService serves destination views with like status resolved and
// the liked-items join for a user's saved page.
type DestinationService struct {
	api    *client.Client
	hotels *HotelService
}

func NewDestinationService(api *client.Client, hotels *HotelService) *DestinationService {
	return &DestinationService{api: api, hotels: hotels}
}

// List returns every destination. With a user present, that user's likes are
// fetched exactly once and membership is resolved in memory, never one
// like lookup per destination. Without a user, isLiked is false everywhere
// and no likes request is made at all.
func (s *DestinationService) List(ctx context.Context, userID *models.NumericID) ([]models.DestinationView, error) {
	var dests []models.Destination
	if err := s.api.List(ctx, "destinations", nil, &dests); err != nil {
		return nil, err
	}

	views := make([]models.DestinationView, 0, len(dests))
	for _, d := range dests {
		views = append(views, d.View())
	}
	if userID == nil {
		return views, nil
	}

	var likes []models.Like
	if err := s.api.List(ctx, "likes", url.Values{"userId": {userID.String()}}, &likes); err != nil {
		return nil, err
	}
	for i := range views {
		target := models.DestinationTarget(views[i].ID)
		for _, l := range likes {
			if target.Matches(l) {
				views[i].IsLiked = true
				break
			}
		}
	}
	return views, nil
}

// GetByID looks a destination up by numeric value. Route parameters arrive
// as text and stored ids drift between number and string, so the lookup
// lists the collection and compares normalized ids rather than trusting a
// path fetch to match types. A miss is ErrNotFound.
func (s *DestinationService) GetByID(ctx context.Context, id models.NumericID) (models.DestinationView, error) {
	var dests []models.Destination
	if err := s.api.List(ctx, "destinations", nil, &dests); err != nil {
		return models.DestinationView{}, err
	}
	for _, d := range dests {
		if d.ID == id {
			return d.View(), nil
		}
	}
	return models.DestinationView{}, ErrNotFound
}

// LikedItems is the saved page: the user's liked destinations and liked
// hotels, resolved from the flat like rows.
type LikedItems struct {
	Destinations []models.DestinationView `json:"destinations"`
	Hotels       []models.HotelView       `json:"hotels"`
}

// Liked fetches the user's likes once, filters all destinations by
// membership, and fans out over every destination's hotel list to find the
// liked hotels. The hotel side is a full scan of the catalog; the likes
// collection only knows ids, so there is nothing cheaper to ask the store.
func (s *DestinationService) Liked(ctx context.Context, userID models.NumericID) (LikedItems, error) {
	var likes []models.Like
	if err := s.api.List(ctx, "likes", url.Values{"userId": {userID.String()}}, &likes); err != nil {
		return LikedItems{}, err
	}

	var destTargets []models.LikeTarget
	var hotelTargets []models.LikeTarget
	for _, l := range likes {
		if l.DestinationID != nil {
			destTargets = append(destTargets, models.DestinationTarget(*l.DestinationID))
		}
		if l.HotelID != nil {
			hotelTargets = append(hotelTargets, models.HotelTarget(*l.HotelID))
		}
	}

	var dests []models.Destination
	if err := s.api.List(ctx, "destinations", nil, &dests); err != nil {
		return LikedItems{}, err
	}

	items := LikedItems{Destinations: []models.DestinationView{}, Hotels: []models.HotelView{}}
	for _, d := range dests {
		for _, t := range destTargets {
			if t.Matches(models.Like{DestinationID: &d.ID}) {
				v := d.View()
				v.IsLiked = true
				items.Destinations = append(items.Destinations, v)
				break
			}
		}
	}

	if len(hotelTargets) == 0 || len(dests) == 0 {
		return items, nil
	}

	hotelLists := make([][]models.Hotel, len(dests))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dests {
		g.Go(func() error {
			hotels, err := s.hotels.hotelsForDestination(gctx, d.ID)
			if err != nil {
				return err
			}
			hotelLists[i] = hotels
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return LikedItems{}, err
	}

	for _, hotels := range hotelLists {
		for _, h := range hotels {
			for _, t := range hotelTargets {
				if t.Matches(models.Like{HotelID: &h.ID}) {
					v := h.View(nil)
					v.IsLiked = true
					items.Hotels = append(items.Hotels, v)
					break
				}
			}
		}
	}
	return items, nil
}
