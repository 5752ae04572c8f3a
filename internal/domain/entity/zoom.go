package entity

import "math"

// Zoom constants
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25 // 25%
	ZoomMax     = 5.0  // 500%
	ZoomStep    = 0.1  // 10% increments
)

// ClampZoom constrains a zoom factor to the valid range and, when floor is
// positive, to at least floor.
func ClampZoom(factor, floor float64) float64 {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		factor = ZoomDefault
	}
	factor = clampZoom(factor)
	if floor > 0 && factor < floor {
		factor = clampZoom(floor)
	}
	return roundZoom(factor)
}

// ZoomPercentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func ZoomPercentage(factor float64) int {
	return int(math.Round(factor * 100))
}

// clampZoom constrains a zoom factor to the valid range.
func clampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}

// roundZoom trims float drift from repeated steps (1.1+0.1 = 1.2000000000000002).
func roundZoom(factor float64) float64 {
	return math.Round(factor*1000) / 1000
}
