package engine

import (
	"errors"

	"fitscape/internal/model"
)

var (
	ErrTraitRange   = errors.New("engine: trait index out of range")
	ErrLocusRange   = errors.New("engine: locus index out of range")
	ErrLengthMatch  = errors.New("engine: effect array length mismatch")
	ErrUnknownRange = errors.New("engine: unknown region")
)

// TraitEngine is the narrow surface of the population engine that landscape
// synthesis drives. The engine owns genomes, traits and fitness; the
// synthesizer only installs landscapes and asks for recomputation.
type TraitEngine interface {
	GenomeLength() int
	Region(name string) (model.Region, error)
	ClearTrait(traitIndex int) error
	SetAdditiveTrait(effects []float64, traitIndex int) error
	AddTraitCoefficient(value float64, loci [2]int, traitIndex int) error
	UpdateTraits() error
	UpdateFitness() error
}
