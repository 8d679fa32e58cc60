package landscape

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fitscape/internal/model"
)

func TestClassifySitesAllZeroFractionsIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.LethalFraction = 0
	cfg.Params.DeleteriousFraction = 0
	cfg.Params.AdaptiveFraction = 0
	cfg.Params.EnvFraction = 0

	rng := rand.New(rand.NewSource(1))
	categories := ClassifySites(300, model.Region{Name: "env", Start: 30, End: 90}, cfg.Params, rng)

	require.Len(t, categories, 300)
	for locus, category := range categories {
		require.Equal(t, SiteNeutral, category, "locus %d", locus)
	}
}

func TestClassifySitesLethalFractionOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.LethalFraction = 1
	cfg.Params.DeleteriousFraction = 0
	cfg.Params.AdaptiveFraction = 0
	cfg.Params.EnvFraction = 0

	rng := rand.New(rand.NewSource(7))
	categories := ClassifySites(90, model.Region{}, cfg.Params, rng)

	for locus, category := range categories {
		if locus%3 == 2 {
			require.Equal(t, SiteNeutral, category, "synonymous locus %d", locus)
			continue
		}
		require.Equal(t, SiteLethal, category, "locus %d", locus)
	}
}

func TestClassifySitesSynonymousAlwaysNeutral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.LethalFraction = 0.3
	cfg.Params.DeleteriousFraction = 0.5
	cfg.Params.AdaptiveFraction = 0.2
	cfg.Params.EnvFraction = 1

	rng := rand.New(rand.NewSource(11))
	categories := ClassifySites(600, model.Region{Name: "env", Start: 0, End: 600}, cfg.Params, rng)

	for locus := 2; locus < len(categories); locus += 3 {
		require.Equal(t, SiteNeutral, categories[locus], "locus %d", locus)
	}
}

func TestClassifySitesEnvFractionOneOverridesRegion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.EnvFraction = 1
	cfg.Params.LethalFraction = 1 // would otherwise claim every eligible locus

	region := model.Region{Name: "env", Start: 60, End: 120}
	rng := rand.New(rand.NewSource(3))
	categories := ClassifySites(300, region, cfg.Params, rng)

	for locus, category := range categories {
		if locus%3 == 2 {
			continue
		}
		if region.Contains(locus) {
			require.Equal(t, SiteEnvOverride, category, "region locus %d", locus)
		} else {
			require.Equal(t, SiteLethal, category, "locus %d", locus)
		}
	}
}

func TestClassifySitesDeleteriousAdaptiveOverlapGoesAdaptive(t *testing.T) {
	// With deleterious covering [0, 1) and adaptive covering (0.4, 1), every
	// draw above 0.4 satisfies both bands; the extra u < 1-adaptive condition
	// on the deleterious band must send those loci to adaptive.
	cfg := DefaultConfig()
	cfg.Params.LethalFraction = 0
	cfg.Params.DeleteriousFraction = 1
	cfg.Params.AdaptiveFraction = 0.6
	cfg.Params.EnvFraction = 0

	rng := rand.New(rand.NewSource(19))
	categories := ClassifySites(3000, model.Region{}, cfg.Params, rng)

	sawDeleterious, sawAdaptive := false, false
	for locus, category := range categories {
		if locus%3 == 2 {
			continue
		}
		require.Contains(t, []SiteCategory{SiteDeleterious, SiteAdaptive}, category, "locus %d", locus)
		sawDeleterious = sawDeleterious || category == SiteDeleterious
		sawAdaptive = sawAdaptive || category == SiteAdaptive
	}
	require.True(t, sawDeleterious)
	require.True(t, sawAdaptive)
}

func TestClassifySitesDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	region := model.Region{Name: "env", Start: 90, End: 150}

	first := ClassifySites(600, region, cfg.Params, rand.New(rand.NewSource(42)))
	second := ClassifySites(600, region, cfg.Params, rand.New(rand.NewSource(42)))
	require.Equal(t, first, second)
}

func TestCodingEligible(t *testing.T) {
	require.True(t, CodingEligible(0))
	require.True(t, CodingEligible(1))
	require.False(t, CodingEligible(2))
	require.True(t, CodingEligible(3))
	require.False(t, CodingEligible(14))
}
