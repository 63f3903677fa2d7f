package services

import (
	"math"
	"time"
)

// Quote is the priced breakdown of a booking. Pure computation, no I/O.
type Quote struct {
	RoomTotal   float64 `json:"roomTotal"`
	FlightTotal float64 `json:"flightTotal"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Nights counts billable nights between arrival and departure, clamped to
// at least 1. Same-day and inverted ranges bill one night rather than
// erroring; the store never validated date order and existing records rely
// on that.
func Nights(arrival, departure time.Time) int {
	n := int(math.Ceil(departure.Sub(arrival).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// Price computes room, flight and total price for a stay.
//
//	roomTotal   = roomRate * nights * roomCount
//	flightTotal = 0 unless includeFlight, else flightRate * guests, doubled
//	              for a round trip
func Price(roomRate float64, nights, roomCount int, flightRate float64, guestCount int, includeFlight, roundTrip bool) Quote {
	if nights < 1 {
		nights = 1
	}
	if roomCount < 1 {
		roomCount = 1
	}
	if guestCount < 1 {
		guestCount = 1
	}

	q := Quote{RoomTotal: roomRate * float64(nights) * float64(roomCount)}
	if includeFlight {
		multiplier := 1.0
		if roundTrip {
			multiplier = 2.0
		}
		q.FlightTotal = flightRate * float64(guestCount) * multiplier
	}
	q.TotalPrice = q.RoomTotal + q.FlightTotal
	return q
}
