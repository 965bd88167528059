package qphase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPower = errors.New("power must be a positive integer")
	ErrNilControl   = errors.New("control ancilla must not be nil")
	ErrNilRegister  = errors.New("eigenstate register must not be nil")
)

/*
Oracle is the capability consumed by the estimator. It applies the controlled
unitary U^power, further rotated by phaseOffset on the control axis, to the
target register conditioned on the control ancilla. The estimator never
inspects U itself; it only observes measurement statistics of the control.

An Oracle is bound to one unitary and one eigenstate for the lifetime of an
estimator invocation and must leave the target unchanged up to global phase.
*/
type Oracle interface {
	Apply(power int, phaseOffset float64, control *Ancilla, target *Register) error
}

// OracleFunc adapts a plain function into an Oracle
type OracleFunc func(power int, phaseOffset float64, control *Ancilla, target *Register) error

func (f OracleFunc) Apply(power int, phaseOffset float64, control *Ancilla, target *Register) error {
	return f(power, phaseOffset, control, target)
}

/*
RotationOracle builds an Oracle for the pure rotation U = exp(i*phi), for which
every state is an eigenstate with eigenphase phi. The controlled application
kicks the phase power*phi back onto the control ancilla; the offset enters with
negative sign so that the zero-outcome counts of the two experiment settings
track cos(power*phi) and sin(power*phi) respectively.
*/
func RotationOracle(phi float64) Oracle {
	return OracleFunc(func(power int, phaseOffset float64, control *Ancilla, target *Register) error {
		if power < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidPower, power)
		}
		if control == nil {
			return ErrNilControl
		}
		if target == nil {
			return ErrNilRegister
		}

		control.Phase(float64(power) * (phi - phaseOffset))
		return nil
	})
}
