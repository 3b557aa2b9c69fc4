// Package piecewise evaluates the hand-fit piecewise-linear regressions the
// projection stages are built from.
//
// A Func is an ordered list of segments. Evaluation picks the first segment
// whose bounds admit the input and returns slope*x + intercept. Bounds keep
// their exact inequality direction, so gaps between segments (for example
// x <= 100 followed by 101 <= x) are reproduced rather than smoothed over.
//
// Missing inputs are NaN. A bounded side never admits NaN, so NaN falls
// through to the first fully unbounded segment, which yields NaN through the
// arithmetic. A Func with no unbounded segment yields NaN directly.
package piecewise

import (
	"math"
)

type op uint8

const (
	opNone op = iota
	opLE
	opLT
	opGE
	opGT
)

// Bound is one side of a segment. The zero Bound is unbounded.
type Bound struct {
	op op
	v  float64
}

// LE admits x <= v.
func LE(v float64) Bound { return Bound{op: opLE, v: v} }

// LT admits x < v.
func LT(v float64) Bound { return Bound{op: opLT, v: v} }

// GE admits x >= v.
func GE(v float64) Bound { return Bound{op: opGE, v: v} }

// GT admits x > v.
func GT(v float64) Bound { return Bound{op: opGT, v: v} }

func (b Bound) admits(x float64) bool {
	switch b.op {
	case opLE:
		return x <= b.v
	case opLT:
		return x < b.v
	case opGE:
		return x >= b.v
	case opGT:
		return x > b.v
	default:
		return true
	}
}

// Segment is one linear piece.
type Segment struct {
	Lo, Hi    Bound
	Slope     float64
	Intercept float64
}

// Linear is an unbounded segment.
func Linear(slope, intercept float64) Segment {
	return Segment{Slope: slope, Intercept: intercept}
}

// Below is a segment bounded only from above.
func Below(hi Bound, slope, intercept float64) Segment {
	return Segment{Hi: hi, Slope: slope, Intercept: intercept}
}

// Above is a segment bounded only from below.
func Above(lo Bound, slope, intercept float64) Segment {
	return Segment{Lo: lo, Slope: slope, Intercept: intercept}
}

// Between is a segment bounded on both sides.
func Between(lo, hi Bound, slope, intercept float64) Segment {
	return Segment{Lo: lo, Hi: hi, Slope: slope, Intercept: intercept}
}

// Flat is an unbounded segment with zero slope. It still propagates a NaN input.
func Flat(c float64) Segment {
	return Segment{Intercept: c}
}

// Admits reports whether x lies inside the segment's bounds.
func (s Segment) Admits(x float64) bool {
	return s.Lo.admits(x) && s.Hi.admits(x)
}

// Func is an ordered piecewise-linear function.
type Func []Segment

// Eval selects the segment on x and evaluates it at x.
func (f Func) Eval(x float64) float64 {
	return f.EvalAt(x, x)
}

// EvalAt selects the segment on sel and evaluates it at x. The strikeout
// regression picks its piece from the capped rating but applies it to the
// dampened one.
func (f Func) EvalAt(sel, x float64) float64 {
	for _, s := range f {
		if s.Admits(sel) {
			return s.Slope*x + s.Intercept
		}
	}
	return math.NaN()
}
