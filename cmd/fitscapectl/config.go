package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fitscape/internal/landscape"
	"fitscape/pkg/fitscape"
)

type scenarioRegion struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

type scenarioFile struct {
	GenomeLength int              `yaml:"genome_length"`
	Regions      []scenarioRegion `yaml:"regions"`
	Traits       []map[string]any `yaml:"traits"`
}

// loadScenario parses a synthesis scenario. Top-level keys are decoded
// strictly; per-trait option maps go through the enumerated option decoder,
// so an unknown key anywhere fails the load.
func loadScenario(path string) (fitscape.Options, []fitscape.SynthesisRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fitscape.Options{}, nil, err
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (fitscape.Options, []fitscape.SynthesisRequest, error) {
	var file scenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return fitscape.Options{}, nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(file.Traits) == 0 {
		return fitscape.Options{}, nil, fmt.Errorf("scenario defines no traits")
	}

	opts := fitscape.Options{GenomeLength: file.GenomeLength}
	for _, region := range file.Regions {
		opts.Regions = append(opts.Regions, fitscape.RegionSpec{
			Name:  region.Name,
			Start: region.Start,
			End:   region.End,
		})
	}
	opts.TraitCount = len(file.Traits)

	requests := make([]fitscape.SynthesisRequest, 0, len(file.Traits))
	for i, options := range file.Traits {
		seed, err := popSeed(options)
		if err != nil {
			return fitscape.Options{}, nil, fmt.Errorf("trait %d: %w", i, err)
		}
		cfg, err := landscape.ConfigFromOptions(options)
		if err != nil {
			return fitscape.Options{}, nil, fmt.Errorf("trait %d: %w", i, err)
		}
		params := cfg.Params
		requests = append(requests, fitscape.SynthesisRequest{
			Trait:  cfg.TraitIndex,
			Region: cfg.Region,
			Seed:   seed,
			Params: &params,
		})
		if cfg.TraitIndex >= opts.TraitCount {
			opts.TraitCount = cfg.TraitIndex + 1
		}
	}
	return opts, requests, nil
}

func popSeed(options map[string]any) (int64, error) {
	raw, ok := options["seed"]
	if !ok {
		return 0, fmt.Errorf("seed is required for reproducible synthesis")
	}
	delete(options, "seed")
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("seed: expected integer, got %T", raw)
	}
}
