// Package units provides scalar quantities whose unit is part of the type.
//
// A quantity is a float64 count of its unit; conversion between units of the
// same dimension rescales by the ratio of the units, so
// CastDistance[Meter](Kilometers(1.2)) is Meters(1200).
package units

import "math"

// Ratio is an exact unit scale relative to the base unit of a dimension.
type Ratio struct {
	Num int64
	Den int64
}

// SI prefixes used by the predefined units.
var (
	Milli = Ratio{Num: 1, Den: 1000}
	Centi = Ratio{Num: 1, Den: 100}
	Deci  = Ratio{Num: 1, Den: 10}
	One   = Ratio{Num: 1, Den: 1}
	Kilo  = Ratio{Num: 1000, Den: 1}
)

// Unit describes one unit of a dimension.
type Unit interface {
	Ratio() Ratio
	Symbol() string
}

// tolerance is the absolute difference, in the left operand's unit, below
// which two quantities compare equal.
const tolerance = 1e-4

// rescale converts v counted in from units into to units.
func rescale(v float64, from, to Ratio) float64 {
	num := from.Num * to.Den
	den := from.Den * to.Num
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	switch {
	case num == 1 && den == 1:
		return v
	case den == 1:
		return v * float64(num)
	case num == 1:
		return v / float64(den)
	default:
		return v * float64(num) / float64(den)
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func equalWithin(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}
