package uconv

import "github.com/lone-faerie/uconv/internal/temperature"

// Convert converts value from one unit to another. Both units must belong to
// the same category.
//
// If either unit is not recognized, the error is a [*UnitError] naming it,
// checking from before to. If the units are in different categories, the
// error is a [*CategoryError].
func Convert(value float64, from, to string) (float64, error) {
	fromCat := CategoryOf(from)
	if fromCat == Unknown {
		return 0, &UnitError{Unit: from}
	}
	toCat := CategoryOf(to)
	if toCat == Unknown {
		return 0, &UnitError{Unit: to}
	}
	if fromCat != toCat {
		return 0, &CategoryError{From: from, To: to, FromCat: fromCat, ToCat: toCat}
	}

	switch fromCat {
	case Length:
		return lengthUnits.convert(value, from, to), nil
	case Mass:
		return massUnits.convert(value, from, to), nil
	case Temperature:
		return convertTemperature(value, from, to), nil
	}
	panic("uconv: unhandled category " + fromCat.String())
}

func convertTemperature(value float64, from, to string) float64 {
	if from == to {
		return value
	}
	f, _ := temperature.Parse(from)
	t, _ := temperature.Parse(to)
	return temperature.Convert(value, f, t)
}
