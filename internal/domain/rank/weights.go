package rank

// Weights parameterizes the scoring policy. One struct covers every tunable
// the pipeline reads so experiments adjust configuration, not code.
type Weights struct {
	// Base score composition.
	TextWeight  float64
	ImageWeight float64

	// Symbolic adjustments.
	ColorBonus       float64
	NameKeywordBonus float64
	DescKeywordBonus float64
	KeywordBonusCap  float64
	HomePenalty      float64
	SleepBanPenalty  float64
	SleepSoftPenalty float64

	// Retention thresholds per mode.
	CategoryThreshold   float64
	CompositeThreshold  float64
	VectorOnlyThreshold float64

	// ImageSearchThreshold gates image-reference recommendation matches.
	ImageSearchThreshold float64
}

// DefaultWeights is the production profile.
func DefaultWeights() Weights {
	return Weights{
		TextWeight:  0.4,
		ImageWeight: 0.6,

		ColorBonus:       0.1,
		NameKeywordBonus: 0.15,
		DescKeywordBonus: 0.05,
		KeywordBonusCap:  0.4,
		HomePenalty:      -0.3,
		SleepBanPenalty:  -0.5,
		SleepSoftPenalty: -0.3,

		CategoryThreshold:   0.30,
		CompositeThreshold:  0.35,
		VectorOnlyThreshold: 0.55,

		ImageSearchThreshold: 0.65,
	}
}

// Threshold returns the retention cutoff for a mode.
func (w Weights) Threshold(m Mode) float64 {
	switch m {
	case ModeCategory:
		return w.CategoryThreshold
	case ModeVectorOnly:
		return w.VectorOnlyThreshold
	default:
		return w.CompositeThreshold
	}
}

// FusionWeights is a named profile for blending a vector-side score with a
// keyword-overlap score.
type FusionWeights struct {
	Vector  float64
	Keyword float64
	TopK    int
}

// ReferenceFusion blends scores when the query is an existing catalog item.
// Keyword overlap dominates: the reference's own text is the best available
// statement of intent.
func ReferenceFusion() FusionWeights {
	return FusionWeights{Vector: 0.3, Keyword: 0.7, TopK: 5}
}

// TextFusion blends scores when the query is free text and the vector side
// already ran the full scoring policy.
func TextFusion() FusionWeights {
	return FusionWeights{Vector: 0.6, Keyword: 0.4, TopK: 5}
}

// Blend combines the two sides under this profile.
func (f FusionWeights) Blend(vector, keyword float64) float64 {
	return f.Vector*vector + f.Keyword*keyword
}
