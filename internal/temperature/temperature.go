// Package temperature converts between temperature scales using Celsius
// as the intermediate scale.
package temperature

type Unit byte

const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
)

var names = map[string]Unit{
	"celsius":    Celsius,
	"fahrenheit": Fahrenheit,
	"kelvin":     Kelvin,
}

// Parse returns the Unit with the given name. Names are case-sensitive.
func Parse(name string) (u Unit, ok bool) {
	u, ok = names[name]
	return
}

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	}
	return "Unit(" + string(rune(u)) + ")"
}

// ToCelsius converts v in unit u to Celsius.
func ToCelsius(v float64, u Unit) float64 {
	switch u {
	case Celsius:
		return v
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	}
	panic("Unknown Temperature Unit")
}

// CelsiusTo converts v in Celsius to unit u.
func CelsiusTo(v float64, u Unit) float64 {
	switch u {
	case Celsius:
		return v
	case Fahrenheit:
		return v*9/5 + 32
	case Kelvin:
		return v + 273.15
	}
	panic("Unknown Temperature Unit")
}

// Convert converts v from one unit to another. If from and to are the same
// unit, v is returned unchanged.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return CelsiusTo(ToCelsius(v, from), to)
}
