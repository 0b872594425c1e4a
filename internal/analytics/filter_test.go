package analytics

import (
	"testing"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

func sampleRequests() []entity.Request {
	yes, no := true, false
	return []entity.Request{
		{ID: "r1", VehicleType: "K9", VehicleNumber: "V1", StationCode: "A01",
			RequestType: entity.RequestTypeStation, Status: entity.RequestStatusOpen},
		{ID: "r2", VehicleType: "K9", VehicleNumber: "V2", StationCode: "A03",
			RequestType: entity.RequestTypePart, PartNumber: "BOLT-42", Status: entity.RequestStatusOpen, Fastener: &yes},
		{ID: "r3", VehicleType: "K10", VehicleNumber: "V3", StationCode: "A12",
			RequestType: entity.RequestTypePart, PartNumber: "PANEL-7", Status: entity.RequestStatusDelivered, Fastener: &no},
		{ID: "r4", VehicleType: "K11", VehicleNumber: "V10", StationCode: "A14",
			RequestType: entity.RequestTypeStation, Status: entity.RequestStatusDelivered},
	}
}

func ids(requests []entity.Request) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ID
	}
	return out
}

func TestRequestFilterEmptyMatchesAll(t *testing.T) {
	src := sampleRequests()
	got := RequestFilter{}.Apply(src)
	if len(got) != len(src) {
		t.Fatalf("expected all %d requests, got %d", len(src), len(got))
	}
}

// TestRequestFilterOrderIndependent verifies composed criteria yield the
// same result set regardless of which criterion would run first
func TestRequestFilterOrderIndependent(t *testing.T) {
	src := sampleRequests()

	byStatusThenType := RequestFilter{RequestType: entity.RequestTypePart}.Apply(
		RequestFilter{Status: entity.RequestStatusOpen}.Apply(src))
	byTypeThenStatus := RequestFilter{Status: entity.RequestStatusOpen}.Apply(
		RequestFilter{RequestType: entity.RequestTypePart}.Apply(src))
	combined := RequestFilter{Status: entity.RequestStatusOpen, RequestType: entity.RequestTypePart}.Apply(src)

	for _, got := range [][]entity.Request{byStatusThenType, byTypeThenStatus, combined} {
		if len(got) != 1 || got[0].ID != "r2" {
			t.Fatalf("expected exactly [r2], got %v", ids(got))
		}
	}
}

// TestRequestFilterFastenerTriState verifies "no" matches both explicit
// false and absent fastener values, while "yes" matches only true
func TestRequestFilterFastenerTriState(t *testing.T) {
	src := sampleRequests()

	yes := RequestFilter{Fastener: FastenerYes}.Apply(src)
	if len(yes) != 1 || yes[0].ID != "r2" {
		t.Fatalf("fastener=yes: expected [r2], got %v", ids(yes))
	}

	no := RequestFilter{Fastener: FastenerNo}.Apply(src)
	if len(no) != 3 {
		t.Fatalf("fastener=no: expected 3 matches (false or absent), got %v", ids(no))
	}

	any := RequestFilter{Fastener: FastenerAny}.Apply(src)
	if len(any) != len(src) {
		t.Fatalf("fastener=any: expected all, got %v", ids(any))
	}
}

// TestRequestFilterSearch verifies case-insensitive substring matching
// over part number, vehicle number and station code
func TestRequestFilterSearch(t *testing.T) {
	src := sampleRequests()

	cases := []struct {
		term string
		want []string
	}{
		{"bolt", []string{"r2"}},
		{"V1", []string{"r1", "r4"}}, // substring also hits V10
		{"a12", []string{"r3"}},
		{"nomatch", nil},
	}

	for _, tc := range cases {
		got := ids(RequestFilter{Search: tc.term}.Apply(src))
		if len(got) != len(tc.want) {
			t.Fatalf("search %q: expected %v, got %v", tc.term, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("search %q: expected %v, got %v", tc.term, tc.want, got)
			}
		}
	}
}

func TestRequestFilterDoesNotMutateSource(t *testing.T) {
	src := sampleRequests()
	before := len(src)
	_ = RequestFilter{Status: entity.RequestStatusOpen}.Apply(src)
	if len(src) != before {
		t.Fatal("filter mutated the source collection")
	}
}

func TestProductionFilter(t *testing.T) {
	statuses := []entity.ProductionStatus{
		statusRow("V1", "A01", entity.StationStatusPending),
		statusRow("V1", "A02", entity.StationStatusCompleted),
		statusRow("V2", "A01", entity.StationStatusPending),
	}

	got := ProductionFilter{VehicleNumber: "V1", Status: entity.StationStatusPending}.Apply(statuses)
	if len(got) != 1 || got[0].StationCode != "A01" {
		t.Fatalf("expected single V1/A01 pending row, got %+v", got)
	}
}
