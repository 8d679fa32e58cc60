package landscape

import (
	"math/rand"

	"fitscape/internal/model"
)

// SiteCategory is the selective class assigned to one locus.
type SiteCategory uint8

const (
	SiteNeutral SiteCategory = iota
	SiteLethal
	SiteDeleterious
	SiteAdaptive
	SiteEnvOverride
)

func (c SiteCategory) String() string {
	switch c {
	case SiteNeutral:
		return "neutral"
	case SiteLethal:
		return "lethal"
	case SiteDeleterious:
		return "deleterious"
	case SiteAdaptive:
		return "adaptive"
	case SiteEnvOverride:
		return "env"
	default:
		return "unknown"
	}
}

const codonSize = 3

// CodingEligible reports whether a locus can carry a selective effect.
// Codon phases 0 and 1 are coding-eligible; phase 2 is synonymous.
func CodingEligible(locus int) bool {
	return locus%codonSize != codonSize-1
}

// ClassifySites draws one category per coding-eligible locus; synonymous loci
// are always neutral. One uniform draw decides all bands for a locus.
//
// The bands overlap by construction and are evaluated in this exact order:
// the region override first, then lethal, then the deleterious band with its
// extra u < 1-adaptive condition, then adaptive. On the deleterious/adaptive
// overlap the extra condition sends the locus to adaptive; on the
// lethal/adaptive overlap the lethal band wins. Do not normalize this into a
// disjoint partition.
func ClassifySites(genomeLength int, region model.Region, p model.SynthesisParams, rng *rand.Rand) []SiteCategory {
	rng = ensureRNG(rng)
	categories := make([]SiteCategory, genomeLength)
	for locus := 0; locus < genomeLength; locus++ {
		if !CodingEligible(locus) {
			continue
		}
		u := rng.Float64()
		switch {
		case region.Contains(locus) && u > 1-p.EnvFraction:
			categories[locus] = SiteEnvOverride
		case u < p.LethalFraction:
			categories[locus] = SiteLethal
		case u >= p.LethalFraction && u < p.LethalFraction+p.DeleteriousFraction && u < 1-p.AdaptiveFraction:
			categories[locus] = SiteDeleterious
		case u > 1-p.AdaptiveFraction:
			categories[locus] = SiteAdaptive
		default:
			categories[locus] = SiteNeutral
		}
	}
	return categories
}
