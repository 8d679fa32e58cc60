package landscape

import (
	"math/rand"

	"fitscape/internal/model"
)

const (
	// Safety margins keep the second interaction member inside the codon
	// range when the base position is drawn.
	valleyMargin  = 100
	epitopeMargin = 10

	// Mean codon distance between the two members of a valley.
	valleyOffsetScale = 10

	// Fixed single-mutant depression shared by all epitopes.
	epitopeDepression = -0.05

	// Epitope members are picked from a 9-codon window past the base.
	epitopeWindow = 9
)

// valleyContribution computes the corrections and pairwise term for one
// fitness valley: two shallow positive single-mutant corrections and a
// compensatory pairwise bonus of 0.25*s plus half the valley depth (the
// strength draw doubles as the depth). Loci sit on codon second positions.
func valleyContribution(pos, offset int, strength float64) (locusA, locusB int, correction float64, term model.EpistaticTerm) {
	locusA = pos*codonSize + 1
	locusB = (pos+offset)*codonSize + 1
	correction = 0.25 * strength
	term = model.EpistaticTerm{
		LocusA: locusA,
		LocusB: locusB,
		Value:  0.25*strength + 0.5*strength,
	}
	return locusA, locusB, correction, term
}

// epitopeContribution computes the corrections and pairwise term for one
// epitope: both single mutants depressed by a fixed quarter of the
// depression constant, the double mutant pushed further down by half the
// strength draw.
func epitopeContribution(pos, subA, subB int, strength float64) (locusA, locusB int, correction float64, term model.EpistaticTerm) {
	locusA = (pos+subA)*codonSize + 1
	locusB = (pos+subB)*codonSize + 1
	correction = 0.25 * epitopeDepression
	term = model.EpistaticTerm{
		LocusA: locusA,
		LocusB: locusB,
		Value:  0.25*epitopeDepression - 0.5*strength,
	}
	return locusA, locusB, correction, term
}

// PlaceValleys draws count fitness valleys, accumulating their single-locus
// corrections into effects and returning the pairwise terms in draw order.
func PlaceValleys(effects []float64, count int, strength float64, rng *rand.Rand) ([]model.EpistaticTerm, error) {
	if count == 0 {
		return nil, nil
	}
	rng = ensureRNG(rng)
	codons := len(effects) / codonSize
	span := codons - valleyMargin
	if span < 1 {
		return nil, configErrorf("number_valleys=%d needs at least %d codons, genome has %d",
			count, valleyMargin+1, codons)
	}
	terms := make([]model.EpistaticTerm, 0, count)
	for k := 0; k < count; k++ {
		pos := rng.Intn(span)
		s := expDraw(rng, strength)
		offset := int(expDraw(rng, valleyOffsetScale)) + 1
		locusA, locusB, correction, term := valleyContribution(pos, offset, s)
		if locusB >= len(effects) {
			return nil, configErrorf("valley offset %d places locus %d outside genome of length %d",
				offset, locusB, len(effects))
		}
		effects[locusA] += correction
		effects[locusB] += correction
		terms = append(terms, term)
	}
	return terms, nil
}

// PlaceEpitopes draws count epitopes, accumulating their single-locus
// depressions into effects and returning the pairwise terms in draw order.
// The two members are distinct sub-offsets of the base codon, kept sorted.
func PlaceEpitopes(effects []float64, count int, strength float64, rng *rand.Rand) ([]model.EpistaticTerm, error) {
	if count == 0 {
		return nil, nil
	}
	rng = ensureRNG(rng)
	codons := len(effects) / codonSize
	span := codons - epitopeMargin
	if span < 1 {
		return nil, configErrorf("number_epitopes=%d needs at least %d codons, genome has %d",
			count, epitopeMargin+1, codons)
	}
	terms := make([]model.EpistaticTerm, 0, count)
	for k := 0; k < count; k++ {
		pos := rng.Intn(span)
		s := expDraw(rng, strength)
		subA := rng.Intn(epitopeWindow)
		subB := rng.Intn(epitopeWindow - 1)
		if subB >= subA {
			subB++
		}
		if subB < subA {
			subA, subB = subB, subA
		}
		locusA, locusB, correction, term := epitopeContribution(pos, subA, subB, s)
		effects[locusA] += correction
		effects[locusB] += correction
		terms = append(terms, term)
	}
	return terms, nil
}
