package quote

import "math"

// Business constants behind the instant estimate. These numbers are
// quoted on the site and in confirmation emails, so they must not be
// "corrected" without a product decision.
var baseCosts = map[string]float64{
	MoveTypeLocal:        400,
	MoveTypeLongDistance: 1200,
	MoveTypeCommercial:   800,
}

var sizeMultipliers = map[string]float64{
	"studio":    0.7,
	"1-bedroom": 1,
	"2-bedroom": 1.4,
	"3-bedroom": 1.8,
	"4-bedroom": 2.2,
	"5+bedroom": 2.8,
	"office":    1.5,
	"warehouse": 3.0,
}

const (
	packingSurcharge = 300
	storageSurcharge = 200

	// Offsets of the displayed estimate range around the point estimate.
	rangeLowOffset  = 200
	rangeHighOffset = 300
)

// EstimateCost maps move parameters to an integer dollar estimate.
// It is a pure function and is safe to call on every form change.
// Unknown move types fall back to the local base rate; an unknown
// home size leaves the base cost unmultiplied.
func EstimateCost(moveType, homeSize string, packing, storage bool) int {
	base, ok := baseCosts[moveType]
	if !ok {
		base = baseCosts[MoveTypeLocal]
	}

	if mult, ok := sizeMultipliers[homeSize]; ok {
		base *= mult
	}

	if packing {
		base += packingSurcharge
	}
	if storage {
		base += storageSurcharge
	}

	return int(math.Round(base))
}

// EstimateRange returns the low/high band displayed to the customer
// around a point estimate.
func EstimateRange(cost int) (low, high int) {
	return cost - rangeLowOffset, cost + rangeHighOffset
}
