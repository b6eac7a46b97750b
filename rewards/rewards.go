package rewards

// Reward is one discount tier of the loyalty ladder.
type Reward struct {
	Tier     int    `json:"tier"`
	Discount int    `json:"discount"`
	Label    string `json:"label"`
}

// NextReward describes the closest unreached tier for a punch count.
// MaxReached is set once the top tier has been passed; no tier exists above
// it, so PunchesNeeded is zero.
type NextReward struct {
	Tier          int  `json:"tier"`
	Discount      int  `json:"discount"`
	PunchesNeeded int  `json:"punches_needed"`
	MaxReached    bool `json:"max_reached,omitempty"`
}

// tiers is the fixed reward ladder, ascending by punch threshold. Adding a
// tier is a one-line change here.
var tiers = []Reward{
	{Tier: 10, Discount: 15, Label: "15% Off"},
	{Tier: 15, Discount: 20, Label: "20% Off"},
	{Tier: 20, Discount: 25, Label: "25% Off"},
}

// PunchesForAmount converts a spend amount to punches earned: one punch per
// $10, truncated toward zero. Amounts under $10 earn nothing.
func PunchesForAmount(amount float64) int {
	return int(amount / 10)
}

// AvailableRewards returns the tiers unlocked at a punch count, ascending.
// The result is never nil.
func AvailableRewards(punches int) []Reward {
	available := make([]Reward, 0, len(tiers))
	for _, r := range tiers {
		if punches >= r.Tier {
			available = append(available, r)
		}
	}
	return available
}

// NextRewardFor returns the smallest tier a punch count has not yet reached.
func NextRewardFor(punches int) NextReward {
	for _, r := range tiers {
		if punches < r.Tier {
			return NextReward{
				Tier:          r.Tier,
				Discount:      r.Discount,
				PunchesNeeded: r.Tier - punches,
			}
		}
	}
	top := tiers[len(tiers)-1]
	return NextReward{
		Tier:       top.Tier,
		Discount:   top.Discount,
		MaxReached: true,
	}
}

// RewardForTier returns the ladder entry for a tier value. The second result
// is false for unrecognized tiers.
func RewardForTier(tier int) (Reward, bool) {
	for _, r := range tiers {
		if r.Tier == tier {
			return r, true
		}
	}
	return Reward{}, false
}
