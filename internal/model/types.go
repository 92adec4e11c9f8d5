// Package model defines shared data structures.
package model

// Config defines the study session settings.
type Config struct {
	Tab         string
	ContentPath string
	Shuffle     bool
	Seed        int64
	Calculator  CalculatorDefaults
}

// CalculatorDefaults pre-fills the interest calculator inputs.
type CalculatorDefaults struct {
	Capital float64
	Rate    float64
	Periods float64
}
