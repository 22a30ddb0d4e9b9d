package pendulum

import "math"

// deriv evaluates the double-pendulum equations of motion at state y.
// Both angular accelerations share the denominator m1 + m2·sin²(θ1−θ2),
// which stays positive for physical masses.
func deriv(y State, p Params) State {
	c := math.Cos(y.Theta1 - y.Theta2)
	s := math.Sin(y.Theta1 - y.Theta2)
	den := p.M1 + p.M2*s*s

	domega1 := (p.M2*Gravity*math.Sin(y.Theta2)*c -
		p.M2*s*(p.L1*y.Omega1*y.Omega1*c+p.L2*y.Omega2*y.Omega2) -
		(p.M1+p.M2)*Gravity*math.Sin(y.Theta1)) / (p.L1 * den)

	domega2 := ((p.M1+p.M2)*(p.L1*y.Omega1*y.Omega1*s-
		Gravity*math.Sin(y.Theta2)+Gravity*math.Sin(y.Theta1)*c) +
		p.M2*p.L2*y.Omega2*y.Omega2*s*c) / (p.L2 * den)

	return State{
		Theta1: y.Omega1,
		Omega1: domega1,
		Theta2: y.Omega2,
		Omega2: domega2,
	}
}

// step advances the state by one classic fourth-order Runge-Kutta step.
// The evaluation order is fixed so identical inputs always produce
// bit-identical output.
func step(y State, p Params, dt float64) State {
	k1 := deriv(y, p)
	k2 := deriv(euler(y, k1, 0.5*dt), p)
	k3 := deriv(euler(y, k2, 0.5*dt), p)
	k4 := deriv(euler(y, k3, dt), p)

	f := dt / 6.0
	return State{
		Theta1: y.Theta1 + f*(k1.Theta1+2*k2.Theta1+2*k3.Theta1+k4.Theta1),
		Omega1: y.Omega1 + f*(k1.Omega1+2*k2.Omega1+2*k3.Omega1+k4.Omega1),
		Theta2: y.Theta2 + f*(k1.Theta2+2*k2.Theta2+2*k3.Theta2+k4.Theta2),
		Omega2: y.Omega2 + f*(k1.Omega2+2*k2.Omega2+2*k3.Omega2+k4.Omega2),
	}
}

// euler returns y + h·k.
func euler(y, k State, h float64) State {
	return State{
		Theta1: y.Theta1 + h*k.Theta1,
		Omega1: y.Omega1 + h*k.Omega1,
		Theta2: y.Theta2 + h*k.Theta2,
		Omega2: y.Omega2 + h*k.Omega2,
	}
}

// Simulate integrates the double pendulum from y0 over [0, TMax) at step Dt
// and returns the sampled angles of both segments. It is a pure function:
// the same parameters and initial state always yield the same trajectory.
func Simulate(p Params, y0 State) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}

	// Sample count covers [0, TMax): ceil(TMax/Dt), 1000 for the defaults.
	n := int(math.Ceil(p.TMax / p.Dt))
	if n < 1 {
		n = 1
	}

	tr := Trajectory{
		Theta1: make([]float64, n),
		Theta2: make([]float64, n),
	}

	y := y0
	tr.Theta1[0] = y.Theta1
	tr.Theta2[0] = y.Theta2
	for i := 1; i < n; i++ {
		y = step(y, p, p.Dt)
		tr.Theta1[i] = y.Theta1
		tr.Theta2[i] = y.Theta2
	}

	return tr, nil
}
