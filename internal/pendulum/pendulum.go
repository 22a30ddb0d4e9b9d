// Package pendulum simulates a planar double pendulum and extracts a
// deterministic chaotic observable from its trajectory.
package pendulum

import (
	"errors"
	"fmt"
)

// Gravity is the gravitational acceleration used by all simulations (m/s²).
const Gravity = 9.81

// ErrInvalidParameter indicates a non-physical simulation parameter.
// It is fatal: no trajectory is produced and the caller must not sample.
var ErrInvalidParameter = errors.New("pendulum: invalid parameter")

// State is the instantaneous state of the double pendulum: the angle and
// angular velocity of each segment. Angles are unrestricted reals and are
// never wrapped to a canonical range.
type State struct {
	Theta1 float64
	Omega1 float64
	Theta2 float64
	Omega2 float64
}

// Params holds the physical parameters for one simulation run.
// All of them are immutable for the lifetime of the run.
type Params struct {
	L1, L2 float64 // segment lengths (m)
	M1, M2 float64 // segment masses (kg)
	TMax   float64 // total simulated duration (s)
	Dt     float64 // integration step (s)
}

// Validate checks that the parameters describe a physical system.
func (p Params) Validate() error {
	switch {
	case p.L1 <= 0:
		return fmt.Errorf("%w: L1 = %g, must be positive", ErrInvalidParameter, p.L1)
	case p.L2 <= 0:
		return fmt.Errorf("%w: L2 = %g, must be positive", ErrInvalidParameter, p.L2)
	case p.M1 <= 0:
		return fmt.Errorf("%w: M1 = %g, must be positive", ErrInvalidParameter, p.M1)
	case p.M2 <= 0:
		return fmt.Errorf("%w: M2 = %g, must be positive", ErrInvalidParameter, p.M2)
	case p.TMax <= 0:
		return fmt.Errorf("%w: TMax = %g, must be positive", ErrInvalidParameter, p.TMax)
	case p.Dt <= 0:
		return fmt.Errorf("%w: Dt = %g, must be positive", ErrInvalidParameter, p.Dt)
	case p.Dt >= p.TMax:
		return fmt.Errorf("%w: Dt = %g, must be smaller than TMax = %g", ErrInvalidParameter, p.Dt, p.TMax)
	}
	return nil
}

// Trajectory holds the sampled angles of both segments at times
// 0, Dt, 2·Dt, ... up to but not including TMax. Sample 0 is the
// initial state.
type Trajectory struct {
	Theta1 []float64
	Theta2 []float64
}

// Len returns the number of samples in the trajectory.
func (tr Trajectory) Len() int {
	return len(tr.Theta2)
}

// LastTheta2 returns the final sampled angle of the second segment.
func (tr Trajectory) LastTheta2() float64 {
	return tr.Theta2[len(tr.Theta2)-1]
}
