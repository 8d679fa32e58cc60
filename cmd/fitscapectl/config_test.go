package main

import (
	"strings"
	"testing"
)

const validScenario = `
genome_length: 1200
regions:
  - name: env
    start: 300
    end: 600
traits:
  - traitnumber: 0
    seed: 42
    lethal_fraction: 0.05
    number_valleys: 2
  - traitnumber: 1
    seed: 7
    lethal_fraction: 0
    deleterious_fraction: 0
    adaptive_fraction: 0.02
    env_fraction: 0
`

func TestParseScenario(t *testing.T) {
	opts, requests, err := parseScenario([]byte(validScenario))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if opts.GenomeLength != 1200 {
		t.Fatalf("genome length: got %d", opts.GenomeLength)
	}
	if len(opts.Regions) != 1 || opts.Regions[0].Name != "env" || opts.Regions[0].End != 600 {
		t.Fatalf("regions mismatch: %+v", opts.Regions)
	}
	if opts.TraitCount != 2 {
		t.Fatalf("trait count: got %d", opts.TraitCount)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].Trait != 0 || requests[0].Seed != 42 {
		t.Fatalf("request 0 mismatch: %+v", requests[0])
	}
	if requests[0].Params.NumberValleys != 2 {
		t.Fatalf("request 0 valleys: %+v", requests[0].Params)
	}
	// Unset options keep defaults.
	if requests[0].Params.DeleteriousFraction != 0.8 {
		t.Fatalf("request 0 deleterious default: %+v", requests[0].Params)
	}
	if requests[1].Trait != 1 || requests[1].Seed != 7 {
		t.Fatalf("request 1 mismatch: %+v", requests[1])
	}
	if requests[1].Params.DeleteriousFraction != 0 || requests[1].Params.AdaptiveFraction != 0.02 {
		t.Fatalf("request 1 overrides: %+v", requests[1].Params)
	}
}

func TestParseScenarioUnknownTraitOption(t *testing.T) {
	scenario := `
traits:
  - traitnumber: 0
    seed: 1
    letal_fraction: 0.2
`
	_, _, err := parseScenario([]byte(scenario))
	if err == nil || !strings.Contains(err.Error(), "letal_fraction") {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

func TestParseScenarioUnknownTopLevelKey(t *testing.T) {
	scenario := `
genom_length: 1200
traits:
  - seed: 1
`
	if _, _, err := parseScenario([]byte(scenario)); err == nil {
		t.Fatal("expected strict decoding error")
	}
}

func TestParseScenarioMissingSeed(t *testing.T) {
	scenario := `
traits:
  - traitnumber: 0
`
	_, _, err := parseScenario([]byte(scenario))
	if err == nil || !strings.Contains(err.Error(), "seed") {
		t.Fatalf("expected missing seed error, got %v", err)
	}
}

func TestParseScenarioNoTraits(t *testing.T) {
	if _, _, err := parseScenario([]byte("genome_length: 1200\n")); err == nil {
		t.Fatal("expected error for scenario without traits")
	}
}
