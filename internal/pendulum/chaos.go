package pendulum

import "math"

// DefaultParams are the fixed parameters used for chaotic value extraction.
// They never change between calls: the chaotic value is a constant of the
// process, and all per-draw entropy comes from the time seed and the
// external token. Do not randomize these.
func DefaultParams() Params {
	return Params{
		L1: 1.0, L2: 1.0,
		M1: 1.0, M2: 1.0,
		TMax: 10, Dt: 0.01,
	}
}

// DefaultInitialState is the fixed near-inverted starting position that
// puts the pendulum deep in its chaotic regime.
func DefaultInitialState() State {
	return State{
		Theta1: math.Pi - 0.1,
		Omega1: 0,
		Theta2: math.Pi - 0.2,
		Omega2: 0,
	}
}

// ChaoticValue runs the default simulation and returns the final angle of
// the second segment. Deterministic: every call in a process returns the
// same value.
func ChaoticValue() float64 {
	tr, err := Simulate(DefaultParams(), DefaultInitialState())
	if err != nil {
		// Unreachable: the default parameters are valid by construction.
		panic(err)
	}
	return tr.LastTheta2()
}
