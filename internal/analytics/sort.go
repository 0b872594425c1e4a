package analytics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
)

// typeRank returns the display rank of a vehicle type per the fixed
// ordering. Unknown types sort after all known ones.
func typeRank(t string) int {
	for i, vt := range entity.VehicleTypes {
		if vt == t {
			return i
		}
	}
	return len(entity.VehicleTypes)
}

// SortVehicles orders a copy of vehicles by type rank, then by natural
// vehicle-number comparison. The input slice is not modified.
func SortVehicles(vehicles []entity.Vehicle) []entity.Vehicle {
	out := make([]entity.Vehicle, len(vehicles))
	copy(out, vehicles)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := typeRank(out[i].VehicleType), typeRank(out[j].VehicleType)
		if ri != rj {
			return ri < rj
		}
		return NaturalLess(out[i].VehicleNumber, out[j].VehicleNumber)
	})
	return out
}

// NaturalLess compares two strings treating runs of digits as numbers,
// so V2 sorts before V10. Comparison of the non-digit parts is
// case-insensitive.
func NaturalLess(a, b string) bool {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs numerically.
			aj := ai
			for aj < len(a) && isDigit(a[aj]) {
				aj++
			}
			bj := bi
			for bj < len(b) && isDigit(b[bj]) {
				bj++
			}
			na := strings.TrimLeft(a[ai:aj], "0")
			nb := strings.TrimLeft(b[bi:bj], "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			ai, bi = aj, bj
			continue
		}
		la, lb := unicode.ToLower(rune(ca)), unicode.ToLower(rune(cb))
		if la != lb {
			return la < lb
		}
		ai++
		bi++
	}
	return len(a)-ai < len(b)-bi
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
