// Package motion implements the Mouse Interpolator (spec.md §4.C), the
// Cursor Smoother (§4.D), and the Motion-Cluster Analyzer (§4.E). All three
// are pure, thread-safe functions of an event slice and a query time, so
// they are safe to call concurrently from the random-access/parallel mode
// described in §5.
package motion

import (
	"errors"
	"sort"

	"github.com/vedantwpatil/compositor/internal/project"
)

// ErrNoData is returned by Interpolate when events is empty (§4.C, §7
// NoData kind). Callers degrade to a safe default rather than propagating
// this as a user-visible failure.
var ErrNoData = errors.New("motion: no mouse events")

// Interpolate returns the mouse position at source time t (§4.C):
//   - empty events -> ErrNoData;
//   - t before the first event or after the last -> that endpoint's position;
//   - fewer than 4 events -> piecewise-linear with smoothstep easing;
//   - otherwise -> Catmull-Rom spline over the bracketing 4 events.
func Interpolate(events []project.MouseEvent, t float64) (Point, error) {
	if len(events) == 0 {
		return Point{}, ErrNoData
	}
	if t <= events[0].TimeMs {
		return pointOf(events[0]), nil
	}
	last := events[len(events)-1]
	if t >= last.TimeMs {
		return pointOf(last), nil
	}

	i := lowerBound(events, t) // events[i-1].TimeMs <= t < events[i].TimeMs, 1 <= i < len
	if len(events) < 4 {
		p0, p1 := pointOf(events[i-1]), pointOf(events[i])
		span := events[i].TimeMs - events[i-1].TimeMs
		u := 0.0
		if span > 0 {
			u = (t - events[i-1].TimeMs) / span
		}
		eased := smoothstep(u)
		return p0.Lerp(p1, eased), nil
	}

	// Bracketing segment is (P1, P2) = (events[i-1], events[i]); pick P0/P3
	// from neighbors, clamping at the ends by repeating the endpoint so the
	// tangent formulas stay well-defined.
	i0, i1, i2, i3 := i-2, i-1, i, i+1
	if i0 < 0 {
		i0 = 0
	}
	if i3 > len(events)-1 {
		i3 = len(events) - 1
	}
	p0, p1, p2, p3 := pointOf(events[i0]), pointOf(events[i1]), pointOf(events[i2]), pointOf(events[i3])

	span := events[i1+1].TimeMs - events[i1].TimeMs
	u := 0.0
	if span > 0 {
		u = (t - events[i1].TimeMs) / span
	}
	return catmullRom(p0, p1, p2, p3, u), nil
}

func pointOf(e project.MouseEvent) Point { return Point{X: e.X, Y: e.Y} }

// lowerBound returns the smallest index i in [1, len(events)) such that
// events[i].TimeMs > t, i.e. the bracket is (events[i-1], events[i]).
func lowerBound(events []project.MouseEvent, t float64) int {
	i := sort.Search(len(events), func(i int) bool { return events[i].TimeMs > t })
	if i < 1 {
		i = 1
	}
	if i > len(events)-1 {
		i = len(events) - 1
	}
	return i
}

// smoothstep applies t'=t^2(3-2t) easing (§4.C).
func smoothstep(u float64) float64 {
	return u * u * (3 - 2*u)
}

// catmullRom evaluates the Catmull-Rom spline coordinate-wise (§4.C):
//
//	v0 = (P2-P0)/2, v1 = (P3-P1)/2
//	P(u) = P1 + v0*u + (3(P2-P1) - 2v0 - v1)*u^2 + (2(P1-P2) + v0 + v1)*u^3
func catmullRom(p0, p1, p2, p3 Point, u float64) Point {
	v0 := p2.Sub(p0).Scale(0.5)
	v1 := p3.Sub(p1).Scale(0.5)

	u2 := u * u
	u3 := u2 * u

	termA := p1
	termB := v0.Scale(u)
	termC := p2.Sub(p1).Scale(3).Sub(v0.Scale(2)).Sub(v1).Scale(u2)
	termD := p1.Sub(p2).Scale(2).Add(v0).Add(v1).Scale(u3)

	return termA.Add(termB).Add(termC).Add(termD)
}
