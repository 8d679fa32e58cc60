package landscape

import (
	"math/rand"

	"fitscape/internal/model"
)

// SampleEffects populates the single-locus effect array from the per-locus
// categories. Lethal sites get a fixed negative constant; deleterious sites a
// fresh negative exponential draw; adaptive and env-override sites a positive
// one. Neutral and synonymous sites stay at zero.
func SampleEffects(categories []SiteCategory, p model.SynthesisParams, rng *rand.Rand) []float64 {
	rng = ensureRNG(rng)
	effects := make([]float64, len(categories))
	for locus, category := range categories {
		switch category {
		case SiteLethal:
			effects[locus] = -p.EffectSizeLethal
		case SiteDeleterious:
			effects[locus] = -expDraw(rng, p.EffectSizeDeleterious)
		case SiteAdaptive:
			effects[locus] = expDraw(rng, p.EffectSizeAdaptive)
		case SiteEnvOverride:
			effects[locus] = expDraw(rng, p.EffectSizeEnv)
		}
	}
	return effects
}
