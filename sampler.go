package qphase

import (
	"fmt"
	"math"
)

/*
Sampler accumulates measurement statistics at a fixed power. Each repetition
runs two interferometry experiments against the eigenstate, one per phase
offset setting, and counts the zero outcomes of each setting separately.
*/
type Sampler struct {
	ancilla *Ancilla
	metrics *Metrics
}

func NewSampler(ancilla *Ancilla, metrics *Metrics) *Sampler {
	return &Sampler{ancilla: ancilla, metrics: metrics}
}

/*
Sample runs nRepeats paired trials of the oracle at the given power and
returns the zero-outcome counts (pZero, pPlus) of the two offset settings.

Every call consumes exactly 2*nRepeats oracle applications and measurements.
Individual outcomes are accepted as-is; robustness comes from aggregation,
never from re-measuring a trial.
*/
func (s *Sampler) Sample(oracle Oracle, power, nRepeats int, eigenstate *Register) (int, int, error) {
	var pZero, pPlus int

	for idxRep := 0; idxRep < nRepeats; idxRep++ {
		for idxExperiment := 0; idxExperiment < 2; idxExperiment++ {
			// The oracle multiplies the offset by power internally, so this
			// division leaves an absolute offset of 0 or π/2 at every scale.
			rotation := math.Pi * float64(idxExperiment) / 2 / float64(power)

			outcome, err := s.runTrial(oracle, power, rotation, eigenstate)
			if err != nil {
				return 0, 0, err
			}

			if outcome == 0 {
				if idxExperiment == 0 {
					pZero++
				} else {
					pPlus++
				}
			}
		}
	}

	return pZero, pPlus, nil
}

/*
runTrial executes one interferometry experiment: the ancilla is taken fresh,
put into superposition, exposed to the controlled oracle, rotated back and
measured. The ancilla is reinitialized on every exit path so no state leaks
into the next trial.
*/
func (s *Sampler) runTrial(oracle Oracle, power int, rotation float64, eigenstate *Register) (int, error) {
	s.ancilla.Reset()
	defer s.ancilla.Reset()

	s.ancilla.Hadamard()
	if err := oracle.Apply(power, rotation, s.ancilla, eigenstate); err != nil {
		return 0, fmt.Errorf("oracle application failed at power %d: %w", power, err)
	}
	s.ancilla.Hadamard()

	outcome := s.ancilla.Measure()
	if s.metrics != nil {
		s.metrics.recordTrial()
	}
	return outcome, nil
}
