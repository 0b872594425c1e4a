// Package analytics holds the derived-metrics and filter engines: pure,
// stateless functions over an entity snapshot. Nothing here touches the
// database or mutates its inputs.
package analytics

import (
	"math"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

// Progress is the per-vehicle station completion breakdown
type Progress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Percent    int `json:"percent"`
}

// VehicleProgress counts the station rows belonging to one vehicle.
// Percent is round(100*completed/total), 0 when the vehicle has no rows.
func VehicleProgress(vehicleNumber string, statuses []entity.ProductionStatus) Progress {
	var p Progress
	for _, s := range statuses {
		if s.VehicleNumber != vehicleNumber {
			continue
		}
		p.Total++
		switch s.Status {
		case entity.StationStatusCompleted:
			p.Completed++
		case entity.StationStatusInProgress:
			p.InProgress++
		default:
			p.Pending++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// Summary is the dashboard card counts over the full unfiltered snapshot
type Summary struct {
	TotalVehicles     int `json:"total_vehicles"`
	CompletedStations int `json:"completed_stations"`
	PendingStations   int `json:"pending_stations"`
	OpenRequests      int `json:"open_requests"`
}

// SummaryCounts computes the four dashboard cards. Always runs over the
// whole snapshot, independent of any active filter.
func SummaryCounts(vehicles []entity.Vehicle, statuses []entity.ProductionStatus, requests []entity.Request) Summary {
	sum := Summary{TotalVehicles: len(vehicles)}
	for _, s := range statuses {
		switch s.Status {
		case entity.StationStatusCompleted:
			sum.CompletedStations++
		case entity.StationStatusPending:
			sum.PendingStations++
		}
	}
	for _, r := range requests {
		if r.Status == entity.RequestStatusOpen {
			sum.OpenRequests++
		}
	}
	return sum
}

// TypeGroup is the station status breakdown for one vehicle type
type TypeGroup struct {
	VehicleType string `json:"vehicle_type"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"in_progress"`
	Pending     int    `json:"pending"`
}

// GroupByType aggregates station status counts per vehicle type, in the
// fixed type order. Status rows are attributed through the vehicle set
// of each type.
func GroupByType(vehicles []entity.Vehicle, statuses []entity.ProductionStatus, types []string) []TypeGroup {
	byNumber := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		byNumber[v.VehicleNumber] = v.VehicleType
	}

	groups := make([]TypeGroup, len(types))
	index := make(map[string]int, len(types))
	for i, t := range types {
		groups[i] = TypeGroup{VehicleType: t}
		index[t] = i
	}

	for _, s := range statuses {
		i, ok := index[byNumber[s.VehicleNumber]]
		if !ok {
			continue
		}
		switch s.Status {
		case entity.StationStatusCompleted:
			groups[i].Completed++
		case entity.StationStatusInProgress:
			groups[i].InProgress++
		default:
			groups[i].Pending++
		}
	}
	return groups
}

// DailyCount is one bucket of the request timeline
type DailyCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DailyBuckets counts requests per UTC calendar day over the last
// dayCount days including today, oldest first. Only requests matching
// pred are counted; a nil pred matches everything. Day keys use UTC so
// buckets are stable regardless of the server's local zone.
func DailyBuckets(requests []entity.Request, dayCount int, now time.Time, pred func(entity.Request) bool) []DailyCount {
	if dayCount <= 0 {
		return nil
	}
	today := now.UTC().Truncate(24 * time.Hour)

	counts := make(map[string]int)
	for _, r := range requests {
		if pred != nil && !pred(r) {
			continue
		}
		counts[r.RequestDate.UTC().Format("2006-01-02")]++
	}

	buckets := make([]DailyCount, 0, dayCount)
	for i := dayCount - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		buckets = append(buckets, DailyCount{Label: key, Count: counts[key]})
	}
	return buckets
}

// RequestTypeBreakdown counts requests by kind for the analytics chart.
// Fastener counts overlap with part counts: a part request with the
// fastener flag set contributes to both.
type RequestTypeCounts struct {
	Station  int `json:"station"`
	Part     int `json:"part"`
	Fastener int `json:"fastener"`
}

func RequestTypeBreakdown(requests []entity.Request) RequestTypeCounts {
	var c RequestTypeCounts
	for _, r := range requests {
		switch r.RequestType {
		case entity.RequestTypeStation:
			c.Station++
		case entity.RequestTypePart:
			c.Part++
		}
		if r.FastenerSet() {
			c.Fastener++
		}
	}
	return c
}

// StatusDistribution counts requests by status
func StatusDistribution(requests []entity.Request) map[string]int {
	dist := make(map[string]int)
	for _, r := range requests {
		dist[r.Status]++
	}
	return dist
}
