package pendulum

import (
	"errors"
	"math"
	"testing"
)

// TestSimulateDeterministic ensures two runs with identical inputs produce
// bit-identical trajectories.
func TestSimulateDeterministic(t *testing.T) {
	p := DefaultParams()
	y0 := DefaultInitialState()

	a, err := Simulate(p, y0)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	b, err := Simulate(p, y0)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("trajectory lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Theta2 {
		if a.Theta1[i] != b.Theta1[i] || a.Theta2[i] != b.Theta2[i] {
			t.Fatalf("trajectories diverge at sample %d: (%v,%v) vs (%v,%v)",
				i, a.Theta1[i], a.Theta2[i], b.Theta1[i], b.Theta2[i])
		}
	}
}

// TestSimulateSampleCount ensures the trajectory covers [0, TMax) at step Dt
// with the initial state as sample zero.
func TestSimulateSampleCount(t *testing.T) {
	p := DefaultParams()
	y0 := DefaultInitialState()

	tr, err := Simulate(p, y0)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	const want = 1000 // ceil(10 / 0.01)
	if tr.Len() != want {
		t.Fatalf("expected %d samples, got %d", want, tr.Len())
	}
	if tr.Theta1[0] != y0.Theta1 || tr.Theta2[0] != y0.Theta2 {
		t.Fatalf("sample 0 = (%v, %v), want initial state (%v, %v)",
			tr.Theta1[0], tr.Theta2[0], y0.Theta1, y0.Theta2)
	}
}

// TestSimulateEvolves ensures the pendulum actually moves from its initial
// position over the default duration.
func TestSimulateEvolves(t *testing.T) {
	tr, err := Simulate(DefaultParams(), DefaultInitialState())
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if tr.LastTheta2() == DefaultInitialState().Theta2 {
		t.Fatalf("theta2 did not evolve from initial value %v", tr.LastTheta2())
	}
}

// TestSimulateRejectsInvalidParams ensures non-physical parameters fail
// before any integration happens.
func TestSimulateRejectsInvalidParams(t *testing.T) {
	base := DefaultParams()
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero length L1", func(p *Params) { p.L1 = 0 }},
		{"negative length L2", func(p *Params) { p.L2 = -1 }},
		{"zero mass M1", func(p *Params) { p.M1 = 0 }},
		{"negative mass M2", func(p *Params) { p.M2 = -0.5 }},
		{"zero duration", func(p *Params) { p.TMax = 0 }},
		{"zero step", func(p *Params) { p.Dt = 0 }},
		{"step exceeds duration", func(p *Params) { p.Dt = 20 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			tr, err := Simulate(p, DefaultInitialState())
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Simulate error = %v, want %v", err, ErrInvalidParameter)
			}
			if tr.Len() != 0 {
				t.Fatalf("expected empty trajectory on error, got %d samples", tr.Len())
			}
		})
	}
}

// TestChaoticValueStable ensures the extractor is a pure nullary function:
// every call returns the same finite value.
func TestChaoticValueStable(t *testing.T) {
	first := ChaoticValue()
	for i := 0; i < 5; i++ {
		if v := ChaoticValue(); v != first {
			t.Fatalf("call %d returned %v, want %v", i, v, first)
		}
	}

	if math.IsNaN(first) || math.IsInf(first, 0) {
		t.Fatalf("chaotic value is not finite: %v", first)
	}
	// theta2 is unwrapped but bounded by conserved energy over 10 s.
	if math.Abs(first) > 500 {
		t.Fatalf("chaotic value out of plausible range: %v", first)
	}
	if first == DefaultInitialState().Theta2 {
		t.Fatalf("chaotic value equals initial angle, pendulum did not move")
	}
}

// TestSimulateSensitiveToInitialState ensures the system is in its chaotic
// regime: a tiny perturbation of the initial angle separates trajectories.
func TestSimulateSensitiveToInitialState(t *testing.T) {
	p := DefaultParams()
	y0 := DefaultInitialState()

	a, err := Simulate(p, y0)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	y0.Theta2 += 1e-9
	b, err := Simulate(p, y0)
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if a.LastTheta2() == b.LastTheta2() {
		t.Fatalf("perturbed trajectory converged to same final angle %v", a.LastTheta2())
	}
}
