package landscape

import (
	"math/rand"
	"time"
)

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// expDraw samples an exponential deviate with the given mean.
func expDraw(rng *rand.Rand, scale float64) float64 {
	return scale * rng.ExpFloat64()
}
