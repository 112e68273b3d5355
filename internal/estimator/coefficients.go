package estimator

// Default coefficient values. These are the single source of truth —
// DefaultCoefficients() references them and no other code should duplicate
// them.
const (
	DefaultHeartRateWeight   = 0.8   // heart rate influence (normalized by baseline BPM)
	DefaultSleepWeight       = -1.5  // each hour of sleep reduces the score
	DefaultWorkWeight        = 1.0   // work hours influence (normalized by baseline hrs/wk)
	DefaultBias              = 20.0  // baseline starting point for the score
	DefaultHeartRateBaseline = 80.0  // BPM
	DefaultWorkBaseline      = 50.0  // hours/week
)

// Coefficients defines the weighted linear formula used to score a subject.
// A set is fixed for the lifetime of an Estimator; tests and config can
// supply their own instead of recompiling.
type Coefficients struct {
	HeartRateWeight   float64
	SleepWeight       float64
	WorkWeight        float64
	Bias              float64
	HeartRateBaseline float64
	WorkBaseline      float64
}

// DefaultCoefficients returns the built-in coefficient set.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		HeartRateWeight:   DefaultHeartRateWeight,
		SleepWeight:       DefaultSleepWeight,
		WorkWeight:        DefaultWorkWeight,
		Bias:              DefaultBias,
		HeartRateBaseline: DefaultHeartRateBaseline,
		WorkBaseline:      DefaultWorkBaseline,
	}
}
