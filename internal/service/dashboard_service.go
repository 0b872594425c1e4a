package service

import (
	"context"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

const dashboardDayWindow = 30

// DashboardService derives the aggregate view shown on the landing page
type DashboardService struct {
	snapshot *SnapshotService
}

func NewDashboardService(snapshot *SnapshotService) *DashboardService {
	return &DashboardService{snapshot: snapshot}
}

// TypeOverview is one vehicle type's group with per-vehicle progress
type TypeOverview struct {
	VehicleType string                `json:"vehicle_type"`
	Stations    []string              `json:"stations"`
	Vehicles    []VehicleWithProgress `json:"vehicles"`
}

// Overview is the full dashboard payload
type Overview struct {
	Summary       analytics.Summary           `json:"summary"`
	Types         []TypeOverview              `json:"types"`
	TypeTotals    []analytics.TypeGroup       `json:"type_totals"`
	RequestTrend  []analytics.DailyCount      `json:"request_trend"`
	DeliveryTrend []analytics.DailyCount      `json:"delivery_trend"`
	RequestTypes  analytics.RequestTypeCounts `json:"request_types"`
	RequestStatus map[string]int              `json:"request_status"`
	OpenByStation map[string][]entity.Request `json:"open_by_station"`
}

// Overview assembles summary counts, per-type progress groups, the
// 30 day request and delivery trends and the request type breakdown
// from a single snapshot
func (s *DashboardService) Overview(ctx context.Context, actor Actor) *Overview {
	snap := s.snapshot.Load(ctx, actor)
	now := time.Now()

	byNumber := make(map[string][]entity.ProductionStatus, len(snap.Vehicles))
	for _, row := range snap.Production {
		byNumber[row.VehicleNumber] = append(byNumber[row.VehicleNumber], row)
	}

	sorted := analytics.SortVehicles(snap.Vehicles)
	types := make([]TypeOverview, 0, len(entity.VehicleTypes))
	for _, vt := range entity.VehicleTypes {
		group := TypeOverview{
			VehicleType: vt,
			Stations:    entity.StationLayouts[vt],
			Vehicles:    []VehicleWithProgress{},
		}
		for _, v := range sorted {
			if v.VehicleType != vt {
				continue
			}
			group.Vehicles = append(group.Vehicles, VehicleWithProgress{
				Vehicle:  v,
				Progress: analytics.VehicleProgress(v.VehicleNumber, byNumber[v.VehicleNumber]),
			})
		}
		types = append(types, group)
	}

	openByStation := make(map[string][]entity.Request)
	for _, r := range snap.Requests {
		if r.Status == entity.RequestStatusOpen {
			openByStation[r.StationCode] = append(openByStation[r.StationCode], r)
		}
	}

	return &Overview{
		Summary:      analytics.SummaryCounts(snap.Vehicles, snap.Production, snap.Requests),
		Types:        types,
		TypeTotals:   analytics.GroupByType(snap.Vehicles, snap.Production, entity.VehicleTypes),
		RequestTrend: analytics.DailyBuckets(snap.Requests, dashboardDayWindow, now, nil),
		DeliveryTrend: analytics.DailyBuckets(snap.Requests, dashboardDayWindow, now, func(r entity.Request) bool {
			return r.Status == entity.RequestStatusDelivered
		}),
		RequestTypes:  analytics.RequestTypeBreakdown(snap.Requests),
		RequestStatus: analytics.StatusDistribution(snap.Requests),
		OpenByStation: openByStation,
	}
}
