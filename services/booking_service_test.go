package services

import (
	"context"
	"errors"
	"testing"

	"getjoy-backend/models"
)

func newBookingService(f *fakeStore) *BookingService {
	api := f.client()
	hotels := NewHotelService(api)
	return NewBookingService(api, hotels, NewDestinationService(api, hotels))
}

func seedBookingFixtures(f *fakeStore) {
	f.add("destinations", map[string]any{
		"id": float64(1), "name": "Paris", "flightPrice": float64(50), "likes": float64(0),
	})
	f.add("hotels", map[string]any{
		"id": "101", "destinationId": float64(1), "name": "Lumière",
		"stars": float64(4), "imageUrl": "lumiere.jpg", "likes": float64(0),
	})
	f.add("rooms", map[string]any{"id": "r1", "hotelId": "101", "type": "Deluxe", "price": float64(100)})
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		HotelID:        "101",
		DestinationID:  1,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		RoomType:       "Deluxe",
		NumberOfGuests: 2,
		NumberOfRooms:  2,
		ArrivalDate:    "2024-01-01",
		DepartureDate:  "2024-01-03",
		IncludeFlight:  true,
		FlightType:     models.FlightRoundTrip,
	}
}

func TestCreateComputesTotalsAndDenormalizes(t *testing.T) {
	f := newFakeStore(t)
	seedBookingFixtures(f)
	s := newBookingService(f)

	booking, err := s.Create(context.Background(), 7, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if booking.RoomTotal != 400 || booking.FlightTotal != 200 || booking.TotalPrice != 600 {
		t.Errorf("totals = %v/%v/%v, want 400/200/600",
			booking.RoomTotal, booking.FlightTotal, booking.TotalPrice)
	}
	if booking.HotelName != "Lumière" || booking.DestinationName != "Paris" {
		t.Errorf("names not denormalized: %q / %q", booking.HotelName, booking.DestinationName)
	}
	if booking.Status != models.BookingConfirmed {
		t.Errorf("status = %q, want confirmed", booking.Status)
	}
	if booking.BookingDate == "" {
		t.Error("bookingDate must be stamped at creation")
	}
	if booking.ID == "" {
		t.Error("stored booking must carry an assigned id")
	}
	if booking.UserID != 7 {
		t.Errorf("userId = %d, want the session user 7", booking.UserID)
	}
}

func TestCreateUnknownRoomType(t *testing.T) {
	f := newFakeStore(t)
	seedBookingFixtures(f)
	s := newBookingService(f)

	req := validRequest()
	req.RoomType = "Penthouse"
	_, err := s.Create(context.Background(), 7, req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsBadDates(t *testing.T) {
	f := newFakeStore(t)
	seedBookingFixtures(f)
	s := newBookingService(f)

	req := validRequest()
	req.DepartureDate = "03/01/2024"
	_, err := s.Create(context.Background(), 7, req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestListForUserAttachesHotelMetadata(t *testing.T) {
	f := newFakeStore(t)
	seedBookingFixtures(f)
	f.add("bookings", map[string]any{
		"id": "b1", "userId": float64(7), "hotelId": "101", "status": "confirmed",
	})
	f.add("bookings", map[string]any{
		// hotel long gone; the view renders without its metadata
		"id": "b2", "userId": float64(7), "hotelId": "gone", "status": "confirmed",
	})
	f.add("bookings", map[string]any{
		"id": "b3", "userId": float64(8), "hotelId": "101", "status": "confirmed",
	})
	s := newBookingService(f)

	views, err := s.ListForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("listForUser: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d bookings, want 2 for user 7", len(views))
	}

	byID := map[string]models.BookingView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	if v := byID["b1"]; v.HotelImage != "lumiere.jpg" || v.HotelStars != 4 {
		t.Errorf("b1 metadata = %q/%d, want lumiere.jpg/4", v.HotelImage, v.HotelStars)
	}
	if v := byID["b2"]; v.HotelImage != "" || v.HotelStars != 0 {
		t.Errorf("b2 should tolerate the missing hotel, got %q/%d", v.HotelImage, v.HotelStars)
	}
}

func TestCancelTransitionsOnce(t *testing.T) {
	f := newFakeStore(t)
	seedBookingFixtures(f)
	f.add("bookings", map[string]any{
		"id": "b1", "userId": float64(7), "hotelId": "101",
		"status": "confirmed", "specialRequests": "late arrival",
	})
	s := newBookingService(f)

	booking, err := s.Cancel(context.Background(), "b1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if booking.Status != models.BookingCancelled {
		t.Errorf("status = %q, want cancelled", booking.Status)
	}
	// fields the cancel path doesn't model must survive the rewrite
	if doc := f.find("bookings", "b1"); doc["specialRequests"] != "late arrival" {
		t.Errorf("unrelated field lost on cancel: %v", doc["specialRequests"])
	}

	writes := f.count("PUT bookings")
	again, err := s.Cancel(context.Background(), "b1")
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if again.Status != models.BookingCancelled {
		t.Errorf("second cancel status = %q", again.Status)
	}
	if f.count("PUT bookings") != writes {
		t.Error("cancelling a cancelled booking must not write again")
	}
}

func TestCancelMissingBooking(t *testing.T) {
	f := newFakeStore(t)
	s := newBookingService(f)

	_, err := s.Cancel(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteMirrorsStoreResult(t *testing.T) {
	f := newFakeStore(t)
	f.add("bookings", map[string]any{"id": "b1", "userId": float64(7), "hotelId": "101"})
	s := newBookingService(f)

	if err := s.Delete(context.Background(), "b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(context.Background(), "b1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
