package models

import (
	"encoding/json"
	"testing"
)

func TestParseLikeTarget(t *testing.T) {
	target, err := ParseLikeTarget("destination", "5")
	if err != nil {
		t.Fatalf("destination target: %v", err)
	}
	if target.Kind() != TargetDestination || target.RecordID() != "5" || target.Collection() != "destinations" {
		t.Errorf("target = %+v", target)
	}

	target, err = ParseLikeTarget("hotel", "101")
	if err != nil {
		t.Fatalf("hotel target: %v", err)
	}
	if target.Kind() != TargetHotel || target.Collection() != "hotels" {
		t.Errorf("target = %+v", target)
	}

	if _, err := ParseLikeTarget("room", "1"); err == nil {
		t.Error("unknown kinds must be rejected")
	}
	if _, err := ParseLikeTarget("destination", "abc"); err == nil {
		t.Error("non-numeric destination ids must be rejected")
	}
	if _, err := ParseLikeTarget("hotel", ""); err == nil {
		t.Error("empty hotel ids must be rejected")
	}
}

func TestRowSetsExactlyOneForeignKey(t *testing.T) {
	row := DestinationTarget(5).Row(7)
	if row.DestinationID == nil || *row.DestinationID != 5 {
		t.Errorf("destinationId = %v", row.DestinationID)
	}
	if row.HotelID != nil {
		t.Error("hotelId must stay null on a destination like")
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	json.Unmarshal(data, &doc)
	if _, present := doc["hotelId"]; present {
		t.Error("null foreign key must be omitted on the wire")
	}

	row = HotelTarget("101").Row(7)
	if row.HotelID == nil || *row.HotelID != "101" {
		t.Errorf("hotelId = %v", row.HotelID)
	}
	if row.DestinationID != nil {
		t.Error("destinationId must stay null on a hotel like")
	}
}

func TestMatchesComparesHotelIDsNumerically(t *testing.T) {
	hotelID := "0101"
	row := Like{UserID: 7, HotelID: &hotelID}

	if !HotelTarget("101").Matches(row) {
		t.Error("padded numeric hotel ids should match")
	}
	if HotelTarget("102").Matches(row) {
		t.Error("different hotel must not match")
	}
	if DestinationTarget(101).Matches(row) {
		t.Error("a hotel like must not match a destination target")
	}

	destID := NumericID(5)
	row = Like{UserID: 7, DestinationID: &destID}
	if !DestinationTarget(5).Matches(row) {
		t.Error("destination like should match its target")
	}
	if HotelTarget("5").Matches(row) {
		t.Error("a destination like must not match a hotel target")
	}
}
