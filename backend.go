// backend.go
package qphase

import (
	"math"
	"math/cmplx"
	"math/rand"
	"time"
)

/*
Ancilla is the single measurement qubit the estimator owns for one invocation.
It is the only piece of quantum state the algorithm mutates: the eigenstate
register is read-mostly and every oracle application must leave it unchanged
up to global phase.

Measurement outcomes are drawn from an injected random source so that runs can
be made deterministic under test.
*/
type Ancilla struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude
	rng   *rand.Rand
}

func NewAncilla(rng *rand.Rand) *Ancilla {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Ancilla{alpha: 1, beta: 0, rng: rng}
}

func (a *Ancilla) Hadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (a.alpha + a.beta) / complex(math.Sqrt2, 0)
	newBeta := (a.alpha - a.beta) / complex(math.Sqrt2, 0)
	a.alpha = newAlpha
	a.beta = newBeta
}

// Phase rotates the |1⟩ amplitude by e^{iθ}
func (a *Ancilla) Phase(theta float64) {
	a.beta *= cmplx.Exp(complex(0, theta))
}

/*
Measure draws a binary outcome with probability |beta|² for One and collapses
the state onto the observed branch, renormalizing the surviving amplitude.
*/
func (a *Ancilla) Measure() int {
	probOne := real(a.beta * cmplx.Conj(a.beta))

	if a.rng.Float64() < probOne {
		norm := cmplx.Abs(a.beta)
		a.alpha = 0
		a.beta = a.beta / complex(norm, 0)
		return 1
	}

	norm := cmplx.Abs(a.alpha)
	if norm > 0 {
		a.alpha = a.alpha / complex(norm, 0)
	} else {
		a.alpha = 1
	}
	a.beta = 0
	return 0
}

// Reset restores the baseline |0⟩ state
func (a *Ancilla) Reset() {
	a.alpha = 1
	a.beta = 0
}

/*
Register is an opaque handle to a prepared eigenstate of the unitary under
estimation. The estimator never inspects its amplitudes; preparation is the
caller's responsibility and is not validated here.
*/
type Register struct {
	amplitudes []complex128
	numQubits  int
}

// NewEigenstate allocates a register of numQubits qubits in the |0...0⟩ state
func NewEigenstate(numQubits int) *Register {
	if numQubits < 1 {
		numQubits = 1
	}
	n := 1 << numQubits
	amps := make([]complex128, n)
	amps[0] = 1
	return &Register{amplitudes: amps, numQubits: numQubits}
}

func (r *Register) NumQubits() int {
	return r.numQubits
}
