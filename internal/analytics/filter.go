package analytics

import (
	"strings"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

// Fastener filter states
const (
	FastenerAny = ""
	FastenerYes = "yes"
	FastenerNo  = "no"
)

// RequestFilter is a set of independent optional criteria over the
// request collection. An empty criterion matches everything. Callers
// keep the last-applied filter and reapply it after a snapshot reload.
type RequestFilter struct {
	Status      string `form:"status" json:"status"`
	RequestType string `form:"request_type" json:"request_type"`
	VehicleType string `form:"vehicle_type" json:"vehicle_type"`
	Fastener    string `form:"fastener" json:"fastener"`
	Search      string `form:"search" json:"search"`
}

// IsZero reports whether no criterion is set
func (f RequestFilter) IsZero() bool {
	return f == RequestFilter{}
}

// Matches applies every set criterion to one request
func (f RequestFilter) Matches(r entity.Request) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.RequestType != "" && r.RequestType != f.RequestType {
		return false
	}
	if f.VehicleType != "" && r.VehicleType != f.VehicleType {
		return false
	}
	switch f.Fastener {
	case FastenerYes:
		if !r.FastenerSet() {
			return false
		}
	case FastenerNo:
		// Absent counts the same as explicit false.
		if r.FastenerSet() {
			return false
		}
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.PartNumber), term) &&
			!strings.Contains(strings.ToLower(r.VehicleNumber), term) &&
			!strings.Contains(strings.ToLower(r.StationCode), term) {
			return false
		}
	}
	return true
}

// Apply returns the matching subset as a new slice, preserving order.
// The source collection is never mutated.
func (f RequestFilter) Apply(requests []entity.Request) []entity.Request {
	if f.IsZero() {
		out := make([]entity.Request, len(requests))
		copy(out, requests)
		return out
	}
	out := make([]entity.Request, 0, len(requests))
	for _, r := range requests {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Describe renders the set criteria as a short human readable line,
// used on report headers. Returns "none" for an empty filter.
func (f RequestFilter) Describe() string {
	if f.IsZero() {
		return "none"
	}
	parts := make([]string, 0, 5)
	for _, kv := range []struct{ key, val string }{
		{"status", f.Status},
		{"type", f.RequestType},
		{"vehicle type", f.VehicleType},
		{"fastener", f.Fastener},
		{"search", f.Search},
	} {
		if kv.val != "" {
			parts = append(parts, kv.key+"="+kv.val)
		}
	}
	return strings.Join(parts, ", ")
}

// ProductionFilter narrows production status rows
type ProductionFilter struct {
	VehicleNumber string `form:"vehicle_number" json:"vehicle_number"`
	Status        string `form:"status" json:"status"`
}

// Apply returns the matching production rows as a new slice
func (f ProductionFilter) Apply(statuses []entity.ProductionStatus) []entity.ProductionStatus {
	out := make([]entity.ProductionStatus, 0, len(statuses))
	for _, s := range statuses {
		if f.VehicleNumber != "" && s.VehicleNumber != f.VehicleNumber {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
	}
	return out
}

// VehicleFilter narrows vehicles by type
type VehicleFilter struct {
	VehicleType string `form:"vehicle_type" json:"vehicle_type"`
}

// Apply returns the matching vehicles as a new slice
func (f VehicleFilter) Apply(vehicles []entity.Vehicle) []entity.Vehicle {
	out := make([]entity.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.VehicleType != "" && v.VehicleType != f.VehicleType {
			continue
		}
		out = append(out, v)
	}
	return out
}
