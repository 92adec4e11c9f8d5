// Package interest computes simple and compound interest projections.
package interest

import (
	"errors"
	"math"
)

// Validation errors returned by Calculate and Project.
var (
	ErrNonPositiveInput = errors.New("interest: principal, rate and periods must be greater than zero")
	ErrOverflow         = errors.New("interest: computed amount is not finite")
	ErrInvalidSteps     = errors.New("interest: projection needs at least one step")
)

// Input holds the calculator inputs. RatePercent is a percentage per period,
// so 1 means 1%.
type Input struct {
	Principal   float64
	RatePercent float64
	Periods     float64
}

// Result is the outcome of a successful calculation.
type Result struct {
	Input          Input
	SimpleAmount   float64
	CompoundAmount float64
}

// Series returns principal, simple amount and compound amount in display order.
func (r Result) Series() [3]float64 {
	return [3]float64{r.Input.Principal, r.SimpleAmount, r.CompoundAmount}
}

// SimpleInterest returns the interest accrued on top of the principal.
func (r Result) SimpleInterest() float64 {
	return r.SimpleAmount - r.Input.Principal
}

// CompoundInterest returns the interest accrued on top of the principal.
func (r Result) CompoundInterest() float64 {
	return r.CompoundAmount - r.Input.Principal
}

// Validate reports ErrNonPositiveInput unless every field is strictly positive.
// NaN fails the comparison and is rejected too.
func (in Input) Validate() error {
	if !(in.Principal > 0) || !(in.RatePercent > 0) || !(in.Periods > 0) {
		return ErrNonPositiveInput
	}
	return nil
}

// Calculate returns the simple and compound amounts for the input.
// Nothing is rounded here; rounding is applied by FormatBRL only.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	simple, compound := amountsAt(in, in.Periods)
	if !isFinite(simple) || !isFinite(compound) {
		return Result{}, ErrOverflow
	}
	return Result{Input: in, SimpleAmount: simple, CompoundAmount: compound}, nil
}

// Point is one sample of a projection.
type Point struct {
	Period   float64
	Simple   float64
	Compound float64
}

// Projection samples both amounts from period 0 to the input's period count.
type Projection struct {
	Input  Input
	Points []Point
}

// Simple returns the simple amounts in sample order.
func (p Projection) Simple() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Simple
	}
	return out
}

// Compound returns the compound amounts in sample order.
func (p Projection) Compound() []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Compound
	}
	return out
}

// Project samples steps+1 evenly spaced points, the last one equal to Calculate's result.
func Project(in Input, steps int) (Projection, error) {
	if err := in.Validate(); err != nil {
		return Projection{}, err
	}
	if steps < 1 {
		return Projection{}, ErrInvalidSteps
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		period := in.Periods * float64(i) / float64(steps)
		if i == steps {
			period = in.Periods
		}
		simple, compound := amountsAt(in, period)
		if !isFinite(simple) || !isFinite(compound) {
			return Projection{}, ErrOverflow
		}
		points = append(points, Point{Period: period, Simple: simple, Compound: compound})
	}
	return Projection{Input: in, Points: points}, nil
}

// amountsAt scales the principal by the linear and compounded growth factors.
// From one period on the compounded factor is never below the linear one, so
// a rounding shortfall in math.Pow is clamped away.
func amountsAt(in Input, periods float64) (simple, compound float64) {
	rate := in.RatePercent / 100
	linear := 1 + rate*periods
	growth := math.Pow(1+rate, periods)
	if periods >= 1 {
		growth = max(growth, linear)
	}
	return in.Principal * linear, in.Principal * growth
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
