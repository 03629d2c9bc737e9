package domain

// Wound describes the gladiator's health state.
type Wound string

const (
	WoundHealthy Wound = "healthy"
	WoundLight   Wound = "light"
	WoundSerious Wound = "serious"
)

// InjuryDistribution is a three-way percentage split over wound outcomes.
// The three fields must sum to 100.
type InjuryDistribution struct {
	Healthy int
	Light   int
	Serious int
}

// Bucket maps a uniform roll in [1, 100] to a wound outcome using
// cumulative thresholds: healthy up to Healthy, light up to Healthy+Light,
// serious above that.
func (d InjuryDistribution) Bucket(roll int) Wound {
	healthyCap := d.Healthy
	lightCap := healthyCap + d.Light
	if roll <= healthyCap {
		return WoundHealthy
	}
	if roll <= lightCap {
		return WoundLight
	}
	return WoundSerious
}
