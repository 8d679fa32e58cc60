package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// EpistaticTerm is one pairwise coefficient between two loci. The value is
// applied only when both loci carry the mutant allele.
type EpistaticTerm struct {
	LocusA int     `json:"locus_a"`
	LocusB int     `json:"locus_b"`
	Value  float64 `json:"value"`
}

// Region is a half-open locus interval [Start, End) with overridden
// classification, e.g. an envelope-coding stretch.
type Region struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (r Region) Contains(locus int) bool {
	return locus >= r.Start && locus < r.End
}

func (r Region) Empty() bool {
	return r.End <= r.Start
}

// TraitLandscape is the assembled input for one trait slot: a per-locus
// additive effect array plus the pairwise terms layered on top of it.
type TraitLandscape struct {
	TraitIndex int             `json:"trait_index"`
	Effects    []float64       `json:"effects"`
	Terms      []EpistaticTerm `json:"terms"`
}

// SynthesisParams are the statistical inputs of one landscape synthesis.
// Field names follow the caller-facing option names.
type SynthesisParams struct {
	LethalFraction        float64 `json:"lethal_fraction"`
	DeleteriousFraction   float64 `json:"deleterious_fraction"`
	AdaptiveFraction      float64 `json:"adaptive_fraction"`
	EnvFraction           float64 `json:"env_fraction"`
	EffectSizeLethal      float64 `json:"effect_size_lethal"`
	EffectSizeDeleterious float64 `json:"effect_size_deleterious"`
	EffectSizeAdaptive    float64 `json:"effect_size_adaptive"`
	EffectSizeEnv         float64 `json:"effect_size_env"`
	NumberValleys         int     `json:"number_valleys"`
	ValleyStrength        float64 `json:"valley_strength"`
	NumberEpitopes        int     `json:"number_epitopes"`
	EpitopeStrength       float64 `json:"epitope_strength"`
}

// LandscapeRecord is the persisted result of one synthesis run.
type LandscapeRecord struct {
	VersionedRecord
	ID           string          `json:"id"`
	CreatedAtUTC string          `json:"created_at_utc"`
	TraitIndex   int             `json:"trait_index"`
	GenomeLength int             `json:"genome_length"`
	Region       string          `json:"region,omitempty"`
	Seed         int64           `json:"seed"`
	Params       SynthesisParams `json:"params"`
	Effects      []float64       `json:"effects"`
	Terms        []EpistaticTerm `json:"terms"`
}
