package landscape

import (
	"fmt"
	"math/rand"

	"fitscape/internal/engine"
	"fitscape/internal/model"
)

// Synthesize runs the full pipeline against the engine's genome: classify
// sites, sample effects, place valleys then epitopes. The returned landscape
// is not yet installed. Draw order is a strict contract: one uniform per
// coding-eligible locus, then effect draws in locus order, then valley draws,
// then epitope draws.
func Synthesize(eng engine.TraitEngine, cfg Config, rng *rand.Rand) (model.TraitLandscape, error) {
	genomeLength := eng.GenomeLength()
	if err := cfg.Validate(genomeLength); err != nil {
		return model.TraitLandscape{}, fmt.Errorf("trait %d: %w", cfg.TraitIndex, err)
	}
	rng = ensureRNG(rng)

	var region model.Region
	if cfg.Region != "" {
		found, err := eng.Region(cfg.Region)
		switch {
		case err == nil:
			region = found
		case cfg.Params.EnvFraction > 0:
			return model.TraitLandscape{}, fmt.Errorf("trait %d: %w: region %q: %v",
				cfg.TraitIndex, ErrConfig, cfg.Region, err)
		}
		// With env_fraction zero a missing region is harmless: no locus can
		// draw the override anyway.
	}

	categories := ClassifySites(genomeLength, region, cfg.Params, rng)
	effects := SampleEffects(categories, cfg.Params, rng)

	valleyTerms, err := PlaceValleys(effects, cfg.Params.NumberValleys, cfg.Params.ValleyStrength, rng)
	if err != nil {
		return model.TraitLandscape{}, fmt.Errorf("trait %d: %w", cfg.TraitIndex, err)
	}
	epitopeTerms, err := PlaceEpitopes(effects, cfg.Params.NumberEpitopes, cfg.Params.EpitopeStrength, rng)
	if err != nil {
		return model.TraitLandscape{}, fmt.Errorf("trait %d: %w", cfg.TraitIndex, err)
	}

	terms := make([]model.EpistaticTerm, 0, len(valleyTerms)+len(epitopeTerms))
	terms = append(terms, valleyTerms...)
	terms = append(terms, epitopeTerms...)

	return model.TraitLandscape{
		TraitIndex: cfg.TraitIndex,
		Effects:    effects,
		Terms:      terms,
	}, nil
}

// Install pushes an assembled landscape into the engine: clear the trait
// slot, set the additive array, add each pairwise coefficient, then recompute
// traits and fitness. Any engine rejection aborts the install.
func Install(eng engine.TraitEngine, ls model.TraitLandscape) error {
	if err := eng.ClearTrait(ls.TraitIndex); err != nil {
		return installErrorf(ls.TraitIndex, "clear trait", err)
	}
	if err := eng.SetAdditiveTrait(ls.Effects, ls.TraitIndex); err != nil {
		return installErrorf(ls.TraitIndex, "set additive trait", err)
	}
	for i, term := range ls.Terms {
		if err := eng.AddTraitCoefficient(term.Value, [2]int{term.LocusA, term.LocusB}, ls.TraitIndex); err != nil {
			return installErrorf(ls.TraitIndex,
				fmt.Sprintf("add coefficient %d at (%d, %d)", i, term.LocusA, term.LocusB), err)
		}
	}
	if err := eng.UpdateTraits(); err != nil {
		return installErrorf(ls.TraitIndex, "update traits", err)
	}
	if err := eng.UpdateFitness(); err != nil {
		return installErrorf(ls.TraitIndex, "update fitness", err)
	}
	return nil
}

// Build synthesizes and installs one trait landscape in a single call.
func Build(eng engine.TraitEngine, cfg Config, rng *rand.Rand) (model.TraitLandscape, error) {
	ls, err := Synthesize(eng, cfg, rng)
	if err != nil {
		return model.TraitLandscape{}, err
	}
	if err := Install(eng, ls); err != nil {
		return model.TraitLandscape{}, err
	}
	return ls, nil
}
