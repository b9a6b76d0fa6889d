package units

import "github.com/dustin/go-humanize"

// DistanceUnit is a Unit measuring length.
type DistanceUnit interface {
	Unit
	distance()
}

type (
	Millimeter struct{}
	Centimeter struct{}
	Decimeter  struct{}
	Meter      struct{}
	Kilometer  struct{}
)

func (Millimeter) Ratio() Ratio {
	return Milli
}

func (Millimeter) Symbol() string {
	return "mm"
}

func (Millimeter) distance() {}

func (Centimeter) Ratio() Ratio {
	return Centi
}

func (Centimeter) Symbol() string {
	return "cm"
}

func (Centimeter) distance() {}

func (Decimeter) Ratio() Ratio {
	return Deci
}

func (Decimeter) Symbol() string {
	return "dm"
}

func (Decimeter) distance() {}

func (Meter) Ratio() Ratio {
	return One
}

func (Meter) Symbol() string {
	return "m"
}

func (Meter) distance() {}

func (Kilometer) Ratio() Ratio {
	return Kilo
}

func (Kilometer) Symbol() string {
	return "km"
}

func (Kilometer) distance() {}

// Distance is a length counted in units of U.
type Distance[U DistanceUnit] float64

type (
	Millimeters = Distance[Millimeter]
	Centimeters = Distance[Centimeter]
	Decimeters  = Distance[Decimeter]
	Meters      = Distance[Meter]
	Kilometers  = Distance[Kilometer]
)

// Count returns the number of U units.
func (d Distance[U]) Count() float64 {
	return float64(d)
}

// String formats d in meters with an SI prefix, e.g. "1.5 km".
func (d Distance[U]) String() string {
	var unit U
	return humanize.SI(rescale(float64(d), unit.Ratio(), One), Meter{}.Symbol())
}

// CastDistance converts d into To units.
func CastDistance[To, From DistanceUnit](d Distance[From]) Distance[To] {
	var from From
	var to To
	return Distance[To](rescale(float64(d), from.Ratio(), to.Ratio()))
}

// EqualDistance reports whether a and b are equal to within 1e-4 of a's unit.
func EqualDistance[U1, U2 DistanceUnit](a Distance[U1], b Distance[U2]) bool {
	return equalWithin(float64(a), float64(CastDistance[U1](b)))
}

func LessDistance[U1, U2 DistanceUnit](a Distance[U1], b Distance[U2]) bool {
	return float64(a) < float64(CastDistance[U1](b))
}

// AddDistance returns a+b in a's unit.
func AddDistance[U1, U2 DistanceUnit](a Distance[U1], b Distance[U2]) Distance[U1] {
	return a + CastDistance[U1](b)
}

// SubDistance returns a-b in a's unit.
func SubDistance[U1, U2 DistanceUnit](a Distance[U1], b Distance[U2]) Distance[U1] {
	return a - CastDistance[U1](b)
}

func (d Distance[U]) Scale(factor float64) Distance[U] {
	return Distance[U](float64(d) * factor)
}

func (d Distance[U]) Div(divisor float64) Distance[U] {
	return Distance[U](float64(d) / divisor)
}
