package models

import "fmt"

// Like is one likes record: a single user's like of a single target. On the
// wire exactly one of destinationId/hotelId is set; the other stays null.
// Use LikeTarget instead of poking the pointers directly.
type Like struct {
	ID            string     `json:"id,omitempty"`
	UserID        NumericID  `json:"userId"`
	DestinationID *NumericID `json:"destinationId,omitempty"`
	HotelID       *string    `json:"hotelId,omitempty"`
}

type TargetKind string

const (
	TargetDestination TargetKind = "destination"
	TargetHotel       TargetKind = "hotel"
)

// LikeTarget is the tagged form of the nullable-union foreign key on Like:
// either a destination id or a hotel id, never both, never neither.
type LikeTarget struct {
	kind          TargetKind
	destinationID NumericID
	hotelID       string
}

func DestinationTarget(id NumericID) LikeTarget {
	return LikeTarget{kind: TargetDestination, destinationID: id}
}

func HotelTarget(id string) LikeTarget {
	return LikeTarget{kind: TargetHotel, hotelID: id}
}

// ParseLikeTarget builds a target from request parameters.
func ParseLikeTarget(kind, id string) (LikeTarget, error) {
	switch TargetKind(kind) {
	case TargetDestination:
		n, err := ParseNumericID(id)
		if err != nil {
			return LikeTarget{}, err
		}
		return DestinationTarget(n), nil
	case TargetHotel:
		if id == "" {
			return LikeTarget{}, fmt.Errorf("missing hotel id")
		}
		return HotelTarget(id), nil
	default:
		return LikeTarget{}, fmt.Errorf("invalid target kind %q", kind)
	}
}

func (t LikeTarget) Kind() TargetKind { return t.kind }

// Collection names the store collection that owns the target's likes
// counter.
func (t LikeTarget) Collection() string {
	if t.kind == TargetHotel {
		return "hotels"
	}
	return "destinations"
}

// RecordID is the target's id as it appears in a record path.
func (t LikeTarget) RecordID() string {
	if t.kind == TargetHotel {
		return t.hotelID
	}
	return t.destinationID.String()
}

// Matches reports whether a like row references this target. Hotel ids are
// strings on the wire but often numeric strings, so they compare via SameID.
func (t LikeTarget) Matches(l Like) bool {
	switch t.kind {
	case TargetDestination:
		return l.DestinationID != nil && *l.DestinationID == t.destinationID
	case TargetHotel:
		return l.HotelID != nil && SameID(*l.HotelID, t.hotelID)
	}
	return false
}

// Row builds the like record to store for this user and target, with the
// other foreign key left null.
func (t LikeTarget) Row(userID NumericID) Like {
	l := Like{UserID: userID}
	switch t.kind {
	case TargetDestination:
		id := t.destinationID
		l.DestinationID = &id
	case TargetHotel:
		id := t.hotelID
		l.HotelID = &id
	}
	return l
}
