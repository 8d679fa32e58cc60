package engine

import (
	"fmt"
	"math"
	"sync"

	"fitscape/internal/model"
)

type coefficient struct {
	loci  [2]int
	value float64
}

type traitSlot struct {
	additive     []float64
	coefficients []coefficient
}

type clone struct {
	mutant  []bool
	traits  []float64
	fitness float64
}

// SimEngine is an in-memory reference implementation of TraitEngine. It keeps
// a population of binary clone genotypes and recomputes their trait values
// and fitness from the installed landscapes. Fitness is exp of trait 0, the
// replication-capacity convention.
type SimEngine struct {
	genomeLength int

	mu      sync.RWMutex
	regions map[string]model.Region
	traits  []traitSlot
	clones  []clone
}

func NewSimEngine(genomeLength, traitCount int) (*SimEngine, error) {
	if genomeLength <= 0 {
		return nil, fmt.Errorf("genome length must be positive, got %d", genomeLength)
	}
	if traitCount <= 0 {
		return nil, fmt.Errorf("trait count must be positive, got %d", traitCount)
	}
	return &SimEngine{
		genomeLength: genomeLength,
		regions:      make(map[string]model.Region),
		traits:       make([]traitSlot, traitCount),
	}, nil
}

func (e *SimEngine) GenomeLength() int {
	return e.genomeLength
}

// DefineRegion registers a named sub-interval [start, end) of the genome.
func (e *SimEngine) DefineRegion(name string, start, end int) error {
	if name == "" {
		return fmt.Errorf("region name is required")
	}
	if start < 0 || end > e.genomeLength || end < start {
		return fmt.Errorf("%w: region %s [%d, %d) outside genome of length %d",
			ErrLocusRange, name, start, end, e.genomeLength)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.regions[name] = model.Region{Name: name, Start: start, End: end}
	return nil
}

func (e *SimEngine) Region(name string) (model.Region, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	region, ok := e.regions[name]
	if !ok {
		return model.Region{}, fmt.Errorf("%w: %s", ErrUnknownRange, name)
	}
	return region, nil
}

// AddClone adds one genotype carrying the mutant allele at the given loci.
func (e *SimEngine) AddClone(mutantLoci ...int) error {
	mutant := make([]bool, e.genomeLength)
	for _, locus := range mutantLoci {
		if locus < 0 || locus >= e.genomeLength {
			return fmt.Errorf("%w: clone locus %d, genome length %d", ErrLocusRange, locus, e.genomeLength)
		}
		mutant[locus] = true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clones = append(e.clones, clone{
		mutant: mutant,
		traits: make([]float64, len(e.traits)),
	})
	return nil
}

func (e *SimEngine) CloneCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.clones)
}

func (e *SimEngine) ClearTrait(traitIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkTrait(traitIndex); err != nil {
		return err
	}
	e.traits[traitIndex] = traitSlot{}
	return nil
}

func (e *SimEngine) SetAdditiveTrait(effects []float64, traitIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkTrait(traitIndex); err != nil {
		return err
	}
	if len(effects) != e.genomeLength {
		return fmt.Errorf("%w: got %d effects for genome length %d",
			ErrLengthMatch, len(effects), e.genomeLength)
	}
	e.traits[traitIndex].additive = append([]float64(nil), effects...)
	return nil
}

func (e *SimEngine) AddTraitCoefficient(value float64, loci [2]int, traitIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkTrait(traitIndex); err != nil {
		return err
	}
	for _, locus := range loci {
		if locus < 0 || locus >= e.genomeLength {
			return fmt.Errorf("%w: coefficient locus %d, genome length %d",
				ErrLocusRange, locus, e.genomeLength)
		}
	}
	if loci[0] == loci[1] {
		return fmt.Errorf("%w: coefficient loci must differ, got (%d, %d)",
			ErrLocusRange, loci[0], loci[1])
	}
	e.traits[traitIndex].coefficients = append(e.traits[traitIndex].coefficients,
		coefficient{loci: loci, value: value})
	return nil
}

// UpdateTraits recomputes every clone's trait values: the additive sum over
// mutant loci plus each pairwise coefficient whose loci are both mutant.
func (e *SimEngine) UpdateTraits() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for c := range e.clones {
		for t := range e.traits {
			e.clones[c].traits[t] = e.traitValueLocked(e.clones[c].mutant, t)
		}
	}
	return nil
}

func (e *SimEngine) UpdateFitness() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for c := range e.clones {
		e.clones[c].fitness = math.Exp(e.clones[c].traits[0])
	}
	return nil
}

// TraitValue returns the cached trait value of one clone, as of the last
// UpdateTraits call.
func (e *SimEngine) TraitValue(cloneIndex, traitIndex int) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkTrait(traitIndex); err != nil {
		return 0, err
	}
	if cloneIndex < 0 || cloneIndex >= len(e.clones) {
		return 0, fmt.Errorf("clone index %d out of range, have %d clones", cloneIndex, len(e.clones))
	}
	return e.clones[cloneIndex].traits[traitIndex], nil
}

// Fitness returns the cached fitness of one clone, as of the last
// UpdateFitness call.
func (e *SimEngine) Fitness(cloneIndex int) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if cloneIndex < 0 || cloneIndex >= len(e.clones) {
		return 0, fmt.Errorf("clone index %d out of range, have %d clones", cloneIndex, len(e.clones))
	}
	return e.clones[cloneIndex].fitness, nil
}

// InstalledTrait returns copies of a trait slot's additive array and terms.
func (e *SimEngine) InstalledTrait(traitIndex int) ([]float64, []model.EpistaticTerm, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkTrait(traitIndex); err != nil {
		return nil, nil, err
	}
	slot := e.traits[traitIndex]
	additive := append([]float64(nil), slot.additive...)
	terms := make([]model.EpistaticTerm, 0, len(slot.coefficients))
	for _, coeff := range slot.coefficients {
		terms = append(terms, model.EpistaticTerm{
			LocusA: coeff.loci[0],
			LocusB: coeff.loci[1],
			Value:  coeff.value,
		})
	}
	return additive, terms, nil
}

func (e *SimEngine) traitValueLocked(mutant []bool, traitIndex int) float64 {
	slot := e.traits[traitIndex]
	value := 0.0
	for locus, effect := range slot.additive {
		if mutant[locus] {
			value += effect
		}
	}
	for _, coeff := range slot.coefficients {
		if mutant[coeff.loci[0]] && mutant[coeff.loci[1]] {
			value += coeff.value
		}
	}
	return value
}

func (e *SimEngine) checkTrait(traitIndex int) error {
	if traitIndex < 0 || traitIndex >= len(e.traits) {
		return fmt.Errorf("%w: trait %d, have %d slots", ErrTraitRange, traitIndex, len(e.traits))
	}
	return nil
}
