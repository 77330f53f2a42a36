package reputation

import (
	"math"
	"sort"
)

// Tier names, ordered by ascending threshold.
const (
	TierBasic            = "basic"
	TierVerified         = "verified"
	TierPremium          = "premium"
	TierVC               = "vc"
	TierEcosystemPartner = "ecosystem_partner"
)

// NextTierMax is reported when the user already sits in the highest tier.
const NextTierMax = "MAX"

// Threshold is one row of the tier threshold table.
type Threshold struct {
	Tier                string `json:"tier"`
	MinPoints           int    `json:"min_points"`
	MonthlyProjectLimit int    `json:"monthly_project_limit"`
}

// DefaultThresholds is the seed threshold table. The persisted table is
// authoritative at runtime; this is only used to bootstrap an empty database.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Tier: TierBasic, MinPoints: 0, MonthlyProjectLimit: 3},
		{Tier: TierVerified, MinPoints: 100, MonthlyProjectLimit: 10},
		{Tier: TierPremium, MinPoints: 500, MonthlyProjectLimit: 25},
		{Tier: TierVC, MinPoints: 2000, MonthlyProjectLimit: 50},
		{Tier: TierEcosystemPartner, MinPoints: 10000, MonthlyProjectLimit: 100},
	}
}

// TierProgress describes where a point total sits in the tier ladder.
type TierProgress struct {
	CurrentTier     string `json:"current_tier"`
	NextTier        string `json:"next_tier"`
	CurrentPoints   int    `json:"current_points"`
	NextTierPoints  int    `json:"next_tier_points"`
	ProgressPercent int    `json:"progress_percent"`
}

// ResolveTier determines the current tier, next tier and progress toward it
// for a point total. The highest threshold less than or equal to totalPoints
// wins; an exact threshold match belongs to the higher tier. At the top of
// the ladder NextTier is "MAX" and progress is 100 with no division performed.
// An empty threshold table falls back to the defaults.
func ResolveTier(totalPoints int, thresholds []Threshold) TierProgress {
	if totalPoints < 0 {
		totalPoints = 0
	}
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds()
	}

	sorted := make([]Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinPoints < sorted[j].MinPoints })

	current := sorted[0]
	currentIdx := 0
	for i, th := range sorted {
		if th.MinPoints <= totalPoints {
			current = th
			currentIdx = i
		}
	}

	if currentIdx == len(sorted)-1 {
		return TierProgress{
			CurrentTier:     current.Tier,
			NextTier:        NextTierMax,
			CurrentPoints:   totalPoints,
			NextTierPoints:  current.MinPoints,
			ProgressPercent: 100,
		}
	}

	next := sorted[currentIdx+1]
	span := next.MinPoints - current.MinPoints
	progress := int(math.Floor(100*float64(totalPoints-current.MinPoints)/float64(span) + 0.5))
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return TierProgress{
		CurrentTier:     current.Tier,
		NextTier:        next.Tier,
		CurrentPoints:   totalPoints,
		NextTierPoints:  next.MinPoints,
		ProgressPercent: progress,
	}
}

// LimitForTier returns the monthly project limit a tier permits, falling
// back to the basic tier's limit for unknown tiers.
func LimitForTier(tier string, thresholds []Threshold) int {
	fallback := 3
	for _, th := range thresholds {
		if th.Tier == tier {
			return th.MonthlyProjectLimit
		}
		if th.Tier == TierBasic {
			fallback = th.MonthlyProjectLimit
		}
	}
	return fallback
}
