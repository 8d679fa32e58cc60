package landscape

import (
	"math"
	"sort"
	"strings"

	"fitscape/internal/model"
)

// DefaultRegionName is the named sub-region consulted for the env override.
const DefaultRegionName = "env"

// Config describes one landscape synthesis. Params mirror the caller-facing
// option names; TraitIndex selects the engine trait slot to rebuild.
type Config struct {
	TraitIndex int
	Region     string
	Params     model.SynthesisParams
}

func DefaultConfig() Config {
	return Config{
		TraitIndex: 0,
		Region:     DefaultRegionName,
		Params: model.SynthesisParams{
			LethalFraction:        0.05,
			DeleteriousFraction:   0.8,
			AdaptiveFraction:      0.01,
			EnvFraction:           0.1,
			EffectSizeLethal:      0.8,
			EffectSizeDeleterious: 0.1,
			EffectSizeAdaptive:    0.01,
			EffectSizeEnv:         0.01,
			NumberValleys:         0,
			ValleyStrength:        0.1,
			NumberEpitopes:        0,
			EpitopeStrength:       0.05,
		},
	}
}

// ConfigFromOptions builds a Config from a dynamic option map. Every
// recognized option is enumerated here; anything else is a configuration
// error rather than silently ignored.
func ConfigFromOptions(options map[string]any) (Config, error) {
	cfg := DefaultConfig()
	for key, raw := range options {
		switch key {
		case "traitnumber":
			v, ok := asInt(raw)
			if !ok {
				return Config{}, configErrorf("option %s: expected integer, got %T", key, raw)
			}
			cfg.TraitIndex = v
		case "region":
			v, ok := raw.(string)
			if !ok {
				return Config{}, configErrorf("option %s: expected string, got %T", key, raw)
			}
			cfg.Region = strings.TrimSpace(v)
		case "lethal_fraction":
			if err := setFloat(&cfg.Params.LethalFraction, key, raw); err != nil {
				return Config{}, err
			}
		case "deleterious_fraction":
			if err := setFloat(&cfg.Params.DeleteriousFraction, key, raw); err != nil {
				return Config{}, err
			}
		case "adaptive_fraction":
			if err := setFloat(&cfg.Params.AdaptiveFraction, key, raw); err != nil {
				return Config{}, err
			}
		case "env_fraction":
			if err := setFloat(&cfg.Params.EnvFraction, key, raw); err != nil {
				return Config{}, err
			}
		case "effect_size_lethal":
			if err := setFloat(&cfg.Params.EffectSizeLethal, key, raw); err != nil {
				return Config{}, err
			}
		case "effect_size_deleterious":
			if err := setFloat(&cfg.Params.EffectSizeDeleterious, key, raw); err != nil {
				return Config{}, err
			}
		case "effect_size_adaptive":
			if err := setFloat(&cfg.Params.EffectSizeAdaptive, key, raw); err != nil {
				return Config{}, err
			}
		case "effect_size_env":
			if err := setFloat(&cfg.Params.EffectSizeEnv, key, raw); err != nil {
				return Config{}, err
			}
		case "number_valleys":
			v, ok := asInt(raw)
			if !ok {
				return Config{}, configErrorf("option %s: expected integer, got %T", key, raw)
			}
			cfg.Params.NumberValleys = v
		case "valley_strength":
			if err := setFloat(&cfg.Params.ValleyStrength, key, raw); err != nil {
				return Config{}, err
			}
		case "number_epitopes":
			v, ok := asInt(raw)
			if !ok {
				return Config{}, configErrorf("option %s: expected integer, got %T", key, raw)
			}
			cfg.Params.NumberEpitopes = v
		case "epitope_strength":
			if err := setFloat(&cfg.Params.EpitopeStrength, key, raw); err != nil {
				return Config{}, err
			}
		default:
			return Config{}, configErrorf("unknown option %q (known: %s)", key, strings.Join(knownOptions(), ", "))
		}
	}
	return cfg, nil
}

// Validate checks a Config against the genome it will be applied to.
func (c Config) Validate(genomeLength int) error {
	if c.TraitIndex < 0 {
		return configErrorf("traitnumber must be non-negative, got %d", c.TraitIndex)
	}
	if genomeLength <= 0 {
		return configErrorf("genome length must be positive, got %d", genomeLength)
	}
	p := c.Params
	fractions := []struct {
		name  string
		value float64
	}{
		{"lethal_fraction", p.LethalFraction},
		{"deleterious_fraction", p.DeleteriousFraction},
		{"adaptive_fraction", p.AdaptiveFraction},
		{"env_fraction", p.EnvFraction},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 || math.IsNaN(f.value) {
			return configErrorf("%s must lie in [0, 1], got %v", f.name, f.value)
		}
	}
	scales := []struct {
		name  string
		value float64
	}{
		{"effect_size_lethal", p.EffectSizeLethal},
		{"effect_size_deleterious", p.EffectSizeDeleterious},
		{"effect_size_adaptive", p.EffectSizeAdaptive},
		{"effect_size_env", p.EffectSizeEnv},
		{"valley_strength", p.ValleyStrength},
		{"epitope_strength", p.EpitopeStrength},
	}
	for _, s := range scales {
		if s.value < 0 || math.IsNaN(s.value) {
			return configErrorf("%s must be non-negative, got %v", s.name, s.value)
		}
	}
	if p.NumberValleys < 0 {
		return configErrorf("number_valleys must be non-negative, got %d", p.NumberValleys)
	}
	if p.NumberEpitopes < 0 {
		return configErrorf("number_epitopes must be non-negative, got %d", p.NumberEpitopes)
	}
	codons := genomeLength / codonSize
	if p.NumberValleys > 0 && codons-valleyMargin < 1 {
		return configErrorf("number_valleys=%d needs at least %d codons, genome has %d",
			p.NumberValleys, valleyMargin+1, codons)
	}
	if p.NumberEpitopes > 0 && codons-epitopeMargin < 1 {
		return configErrorf("number_epitopes=%d needs at least %d codons, genome has %d",
			p.NumberEpitopes, epitopeMargin+1, codons)
	}
	if p.EnvFraction > 0 && c.Region == "" {
		return configErrorf("env_fraction=%v requires a named region", p.EnvFraction)
	}
	return nil
}

func knownOptions() []string {
	options := []string{
		"traitnumber", "region",
		"lethal_fraction", "deleterious_fraction", "adaptive_fraction", "env_fraction",
		"effect_size_lethal", "effect_size_deleterious", "effect_size_adaptive", "effect_size_env",
		"number_valleys", "valley_strength", "number_epitopes", "epitope_strength",
	}
	sort.Strings(options)
	return options
}

func setFloat(dst *float64, key string, raw any) error {
	v, ok := asFloat64(raw)
	if !ok {
		return configErrorf("option %s: expected number, got %T", key, raw)
	}
	*dst = v
	return nil
}

func asFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}
