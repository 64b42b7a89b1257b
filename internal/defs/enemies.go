// internal/defs/enemies.go
package defs

// EnemyTier holds the static data for one enemy level.
type EnemyTier struct {
	Tier     int
	Health   float64
	Reward   int // coins granted on kill
	LifeCost int // lives lost when the enemy leaks
}

var tierRewards = []int{1, 2, 5, 10}
var tierLifeCosts = []int{5, 10, 25, 50}

// TierStats returns the stats of the given tier. Health grows by 10 per tier;
// rewards and life costs of tiers past the table reuse the highest entry.
func TierStats(tier int) EnemyTier {
	if tier < 0 {
		tier = 0
	}
	i := tier
	if i >= len(tierRewards) {
		i = len(tierRewards) - 1
	}
	return EnemyTier{
		Tier:     tier,
		Health:   float64(tier*10 + 10),
		Reward:   tierRewards[i],
		LifeCost: tierLifeCosts[i],
	}
}
