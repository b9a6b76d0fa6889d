package units

import "github.com/dustin/go-humanize"

// MassUnit is a Unit measuring mass.
type MassUnit interface {
	Unit
	mass()
}

type (
	Milligram struct{}
	Gram      struct{}
	Kilogram  struct{}
)

func (Milligram) Ratio() Ratio {
	return Milli
}

func (Milligram) Symbol() string {
	return "mg"
}

func (Milligram) mass() {}

func (Gram) Ratio() Ratio {
	return One
}

func (Gram) Symbol() string {
	return "g"
}

func (Gram) mass() {}

func (Kilogram) Ratio() Ratio {
	return Kilo
}

func (Kilogram) Symbol() string {
	return "kg"
}

func (Kilogram) mass() {}

// Mass is a mass counted in units of U.
type Mass[U MassUnit] float64

type (
	Milligrams = Mass[Milligram]
	Grams      = Mass[Gram]
	Kilograms  = Mass[Kilogram]
)

func (m Mass[U]) Count() float64 {
	return float64(m)
}

// String formats m in grams with an SI prefix, e.g. "1.2 kg".
func (m Mass[U]) String() string {
	var unit U
	return humanize.SI(rescale(float64(m), unit.Ratio(), One), Gram{}.Symbol())
}

// CastMass converts m into To units.
func CastMass[To, From MassUnit](m Mass[From]) Mass[To] {
	var from From
	var to To
	return Mass[To](rescale(float64(m), from.Ratio(), to.Ratio()))
}

func EqualMass[U1, U2 MassUnit](a Mass[U1], b Mass[U2]) bool {
	return equalWithin(float64(a), float64(CastMass[U1](b)))
}

func LessMass[U1, U2 MassUnit](a Mass[U1], b Mass[U2]) bool {
	return float64(a) < float64(CastMass[U1](b))
}

func AddMass[U1, U2 MassUnit](a Mass[U1], b Mass[U2]) Mass[U1] {
	return a + CastMass[U1](b)
}

func SubMass[U1, U2 MassUnit](a Mass[U1], b Mass[U2]) Mass[U1] {
	return a - CastMass[U1](b)
}

func (m Mass[U]) Scale(factor float64) Mass[U] {
	return Mass[U](float64(m) * factor)
}

func (m Mass[U]) Div(divisor float64) Mass[U] {
	return Mass[U](float64(m) / divisor)
}
