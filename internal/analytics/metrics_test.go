package analytics

import (
	"testing"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

func statusRow(vehicle, station, status string) entity.ProductionStatus {
	return entity.ProductionStatus{VehicleNumber: vehicle, StationCode: station, Status: status}
}

// TestVehicleProgressNoRows verifies the zero-division guard
func TestVehicleProgressNoRows(t *testing.T) {
	p := VehicleProgress("V1", nil)
	if p.Percent != 0 {
		t.Fatalf("expected percent 0 for vehicle with no rows, got %d", p.Percent)
	}
	if p.Total != 0 || p.Completed != 0 || p.InProgress != 0 || p.Pending != 0 {
		t.Fatalf("expected all-zero progress, got %+v", p)
	}
}

// TestVehicleProgressCounts verifies percent rounding and that the
// three buckets partition the total
func TestVehicleProgressCounts(t *testing.T) {
	cases := []struct {
		name      string
		statuses  []entity.ProductionStatus
		percent   int
		completed int
	}{
		{
			name: "one of three completed rounds to 33",
			statuses: []entity.ProductionStatus{
				statusRow("V1", "A01", entity.StationStatusCompleted),
				statusRow("V1", "A02", entity.StationStatusInProgress),
				statusRow("V1", "A03", entity.StationStatusPending),
			},
			percent:   33,
			completed: 1,
		},
		{
			name: "two of three completed rounds to 67",
			statuses: []entity.ProductionStatus{
				statusRow("V1", "A01", entity.StationStatusCompleted),
				statusRow("V1", "A02", entity.StationStatusCompleted),
				statusRow("V1", "A03", entity.StationStatusPending),
			},
			percent:   67,
			completed: 2,
		},
		{
			name: "all completed is 100",
			statuses: []entity.ProductionStatus{
				statusRow("V1", "A01", entity.StationStatusCompleted),
				statusRow("V1", "A02", entity.StationStatusCompleted),
			},
			percent:   100,
			completed: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := VehicleProgress("V1", tc.statuses)
			if p.Percent != tc.percent {
				t.Fatalf("expected percent %d, got %d", tc.percent, p.Percent)
			}
			if p.Completed != tc.completed {
				t.Fatalf("expected completed %d, got %d", tc.completed, p.Completed)
			}
			if p.Completed+p.InProgress+p.Pending != p.Total {
				t.Fatalf("buckets do not sum to total: %+v", p)
			}
		})
	}
}

// TestVehicleProgressIgnoresOtherVehicles verifies rows of other
// vehicles never leak into the count
func TestVehicleProgressIgnoresOtherVehicles(t *testing.T) {
	statuses := []entity.ProductionStatus{
		statusRow("V1", "A01", entity.StationStatusCompleted),
		statusRow("V2", "A01", entity.StationStatusCompleted),
		statusRow("V2", "A02", entity.StationStatusCompleted),
	}
	p := VehicleProgress("V1", statuses)
	if p.Total != 1 || p.Completed != 1 {
		t.Fatalf("expected total=1 completed=1, got %+v", p)
	}
}

func TestSummaryCounts(t *testing.T) {
	vehicles := []entity.Vehicle{
		{VehicleNumber: "V1", VehicleType: entity.VehicleTypeK9},
		{VehicleNumber: "V2", VehicleType: entity.VehicleTypeK10},
	}
	statuses := []entity.ProductionStatus{
		statusRow("V1", "A01", entity.StationStatusCompleted),
		statusRow("V1", "A02", entity.StationStatusPending),
		statusRow("V2", "A01", entity.StationStatusInProgress),
		statusRow("V2", "A12", entity.StationStatusPending),
	}
	requests := []entity.Request{
		{Status: entity.RequestStatusOpen},
		{Status: entity.RequestStatusDelivered},
		{Status: entity.RequestStatusOpen},
	}

	sum := SummaryCounts(vehicles, statuses, requests)
	if sum.TotalVehicles != 2 {
		t.Fatalf("expected 2 vehicles, got %d", sum.TotalVehicles)
	}
	if sum.CompletedStations != 1 {
		t.Fatalf("expected 1 completed station, got %d", sum.CompletedStations)
	}
	if sum.PendingStations != 2 {
		t.Fatalf("expected 2 pending stations, got %d", sum.PendingStations)
	}
	if sum.OpenRequests != 2 {
		t.Fatalf("expected 2 open requests, got %d", sum.OpenRequests)
	}
}

func TestGroupByType(t *testing.T) {
	vehicles := []entity.Vehicle{
		{VehicleNumber: "V1", VehicleType: entity.VehicleTypeK9},
		{VehicleNumber: "V2", VehicleType: entity.VehicleTypeK9},
		{VehicleNumber: "V3", VehicleType: entity.VehicleTypeK11},
	}
	statuses := []entity.ProductionStatus{
		statusRow("V1", "A01", entity.StationStatusCompleted),
		statusRow("V2", "A01", entity.StationStatusInProgress),
		statusRow("V3", "A01", entity.StationStatusPending),
		statusRow("V9", "A01", entity.StationStatusCompleted), // unknown vehicle, dropped
	}

	groups := GroupByType(vehicles, statuses, entity.VehicleTypes)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].VehicleType != entity.VehicleTypeK9 || groups[0].Completed != 1 || groups[0].InProgress != 1 {
		t.Fatalf("unexpected K9 group: %+v", groups[0])
	}
	if groups[1].Completed+groups[1].InProgress+groups[1].Pending != 0 {
		t.Fatalf("expected empty K10 group, got %+v", groups[1])
	}
	if groups[2].Pending != 1 {
		t.Fatalf("expected 1 pending in K11 group, got %+v", groups[2])
	}
}

// TestDailyBucketsSum verifies that when every request falls inside the
// window, the bucket counts sum to the request count
func TestDailyBucketsSum(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	requests := []entity.Request{
		{RequestDate: now},
		{RequestDate: now.AddDate(0, 0, -1)},
		{RequestDate: now.AddDate(0, 0, -1)},
		{RequestDate: now.AddDate(0, 0, -5)},
	}

	buckets := DailyBuckets(requests, 30, now, nil)
	if len(buckets) != 30 {
		t.Fatalf("expected 30 buckets, got %d", len(buckets))
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(requests) {
		t.Fatalf("expected bucket sum %d, got %d", len(requests), total)
	}

	// Oldest first, today last.
	if buckets[len(buckets)-1].Label != "2026-03-10" {
		t.Fatalf("expected last bucket to be today, got %s", buckets[len(buckets)-1].Label)
	}
	if buckets[len(buckets)-1].Count != 1 {
		t.Fatalf("expected 1 request today, got %d", buckets[len(buckets)-1].Count)
	}
	if buckets[len(buckets)-2].Count != 2 {
		t.Fatalf("expected 2 requests yesterday, got %d", buckets[len(buckets)-2].Count)
	}
}

// TestDailyBucketsPredicate verifies the status predicate narrows counts
func TestDailyBucketsPredicate(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	requests := []entity.Request{
		{RequestDate: now, Status: entity.RequestStatusOpen},
		{RequestDate: now, Status: entity.RequestStatusDelivered},
	}

	open := DailyBuckets(requests, 1, now, func(r entity.Request) bool {
		return r.Status == entity.RequestStatusOpen
	})
	if len(open) != 1 || open[0].Count != 1 {
		t.Fatalf("expected a single bucket counting 1 open request, got %+v", open)
	}
}

// TestDailyBucketsUTCDayKey verifies a request late in the UTC day stays
// in that day's bucket
func TestDailyBucketsUTCDayKey(t *testing.T) {
	now := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	requests := []entity.Request{
		{RequestDate: time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)},
	}
	buckets := DailyBuckets(requests, 2, now, nil)
	if buckets[0].Label != "2026-03-09" || buckets[0].Count != 1 {
		t.Fatalf("expected the request bucketed on 2026-03-09, got %+v", buckets)
	}
}

func TestRequestTypeBreakdown(t *testing.T) {
	yes := true
	requests := []entity.Request{
		{RequestType: entity.RequestTypeStation},
		{RequestType: entity.RequestTypePart},
		{RequestType: entity.RequestTypePart, Fastener: &yes},
	}
	c := RequestTypeBreakdown(requests)
	if c.Station != 1 || c.Part != 2 || c.Fastener != 1 {
		t.Fatalf("unexpected breakdown: %+v", c)
	}
}
