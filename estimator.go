// Package qphase implements robust iterative phase estimation: a digit-by-digit
// refinement of an unknown eigenphase using redundant sampling at exponentially
// growing powers of the oracle, tolerant of state-preparation and measurement
// errors while keeping Heisenberg-limited query scaling.
package qphase

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

var (
	ErrInvalidPrecision = errors.New("bits of precision must be at least 1")
	ErrNilOracle        = errors.New("oracle must not be nil")
)

// Estimator runs phase estimation invocations against an oracle
type Estimator struct {
	config  *Config
	rng     *rand.Rand
	metrics *Metrics
}

func NewEstimator(config *Config) *Estimator {
	if config == nil {
		config = NewConfig()
	}
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Estimator{
		config:  config,
		rng:     rng,
		metrics: NewMetrics(),
	}
}

// Metrics exposes the query counters of this estimator
func (e *Estimator) Metrics() *Metrics {
	return e.metrics
}

/*
Estimate refines an eigenphase estimate one scale at a time. At exponent e the
oracle is driven at power 2^e, where statistics resolve the phase only modulo
2π/power; subtracting the scaled prior estimate before unwrapping extracts the
new fine correction without conflicting with the precision already accumulated.

The loop always runs exactly bitsPrecision iterations and the result is
returned as accumulated, without a forced final wrap. Any oracle failure
aborts the invocation; no partial estimate is meaningful.
*/
func (e *Estimator) Estimate(bitsPrecision int, oracle Oracle, eigenstate *Register) (float64, error) {
	if bitsPrecision < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPrecision, bitsPrecision)
	}
	if oracle == nil {
		return 0, ErrNilOracle
	}
	if eigenstate == nil {
		return 0, ErrNilRegister
	}

	ancilla := NewAncilla(e.rng)
	sampler := NewSampler(ancilla, e.metrics)

	thetaEst := 0.0
	for exponent := 0; exponent < bitsPrecision; exponent++ {
		power := 1 << exponent
		nRepeats := repeatsFor(bitsPrecision, exponent)

		pZero, pPlus, err := sampler.Sample(oracle, power, nRepeats, eigenstate)
		if err != nil {
			return 0, err
		}

		deltaTheta := math.Atan2(
			float64(pPlus)-float64(nRepeats)/2,
			float64(pZero)-float64(nRepeats)/2,
		)
		delta := Unwrap(deltaTheta, thetaEst, power)
		thetaEst += delta / float64(power)

		e.metrics.recordLevel(nRepeats)
		errnie.Info(
			"phase level %v/%v - power %v, repeats %v, estimate %v",
			exponent+1,
			bitsPrecision,
			power,
			nRepeats,
			thetaEst,
		)
	}

	return thetaEst, nil
}

/*
repeatsFor computes the redundant sampling schedule for one refinement level.
The coefficients 2.5 and 0.5 and the round-up-to-even rule come from the
robust phase estimation reference and are fixed; the count depends on the
remaining precision and is recomputed every iteration, never cached.
*/
func repeatsFor(bitsPrecision, exponent int) int {
	nRepeats := int(math.Ceil(2.5*float64(bitsPrecision-exponent) + 0.5))
	if nRepeats%2 == 1 {
		nRepeats++
	}
	return nRepeats
}

// EstimatePhase is the public entry point, running one estimation with a
// freshly seeded estimator.
func EstimatePhase(bitsPrecision int, oracle Oracle, eigenstate *Register) (float64, error) {
	return NewEstimator(nil).Estimate(bitsPrecision, oracle, eigenstate)
}
