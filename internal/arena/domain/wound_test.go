package domain

import "testing"

// TestInjuryDistributionBucket ensures rolls land in the cumulative buckets
// at the exact boundaries.
func TestInjuryDistributionBucket(t *testing.T) {
	tests := []struct {
		name string
		dist InjuryDistribution
		roll int
		want Wound
	}{
		{name: "train healthy low", dist: InjuryTrainHealthy, roll: 1, want: WoundHealthy},
		{name: "train healthy cap", dist: InjuryTrainHealthy, roll: 80, want: WoundHealthy},
		{name: "train healthy light floor", dist: InjuryTrainHealthy, roll: 81, want: WoundLight},
		{name: "train healthy light cap", dist: InjuryTrainHealthy, roll: 98, want: WoundLight},
		{name: "train healthy serious floor", dist: InjuryTrainHealthy, roll: 99, want: WoundSerious},
		{name: "train healthy serious cap", dist: InjuryTrainHealthy, roll: 100, want: WoundSerious},
		{name: "train light serious floor", dist: InjuryTrainLight, roll: 96, want: WoundSerious},
		{name: "ai win never serious", dist: InjuryAIWin, roll: 100, want: WoundLight},
		{name: "ai loss serious tail", dist: InjuryAILoss, roll: 91, want: WoundSerious},
		{name: "pvp win never serious", dist: InjuryPvPWin, roll: 100, want: WoundLight},
		{name: "pvp loss light band", dist: InjuryPvPLoss, roll: 90, want: WoundLight},
		{name: "pvp loss serious tail", dist: InjuryPvPLoss, roll: 91, want: WoundSerious},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dist.Bucket(tc.roll); got != tc.want {
				t.Fatalf("bucket(%d) = %s, want %s", tc.roll, got, tc.want)
			}
		})
	}
}

// TestInjuryDistributionsSumTo100 guards the rule tables against drift.
func TestInjuryDistributionsSumTo100(t *testing.T) {
	dists := map[string]InjuryDistribution{
		"train healthy": InjuryTrainHealthy,
		"train light":   InjuryTrainLight,
		"ai win":        InjuryAIWin,
		"ai loss":       InjuryAILoss,
		"pvp win":       InjuryPvPWin,
		"pvp loss":      InjuryPvPLoss,
	}
	for name, dist := range dists {
		if sum := dist.Healthy + dist.Light + dist.Serious; sum != 100 {
			t.Fatalf("%s distribution sums to %d, want 100", name, sum)
		}
	}
}
