package uconv

import (
	"fmt"
	"strings"

	"github.com/lone-faerie/uconv/internal/temperature"
)

// A Category is a group of units that can be converted between each other.
type Category int

const (
	Unknown Category = iota
	Length
	Mass
	Temperature
)

var categoryNames = [...]string{
	Unknown:     "unknown",
	Length:      "length",
	Mass:        "mass",
	Temperature: "temperature",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalText implements [encoding.TextMarshaler].
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// by calling [ParseCategory].
func (c *Category) UnmarshalText(data []byte) (err error) {
	*c, err = ParseCategory(string(data))
	return
}

// ParseCategory returns the Category named s, ignoring case.
// "unknown" is not accepted.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown category %q", s)
}

// Categories returns every known category in listing order.
func Categories() []Category {
	return []Category{Length, Mass, Temperature}
}

// Base returns the name of the unit that the category's other units are
// expressed in terms of.
func (c Category) Base() string {
	switch c {
	case Length:
		return lengthUnits.base()
	case Mass:
		return massUnits.base()
	case Temperature:
		return temperature.Celsius.String()
	}
	return ""
}

// CategoryOf returns the category of the named unit. The length table is
// checked first, then the mass table, then the temperature units.
// Unrecognized names return [Unknown].
func CategoryOf(unit string) Category {
	if lengthUnits.contains(unit) {
		return Length
	}
	if massUnits.contains(unit) {
		return Mass
	}
	if _, ok := temperature.Parse(unit); ok {
		return Temperature
	}
	return Unknown
}

// Units returns the unit names of category c in listing order. The base
// unit is always first. Unknown categories return nil.
func Units(c Category) []string {
	switch c {
	case Length:
		return lengthUnits.names()
	case Mass:
		return massUnits.names()
	case Temperature:
		return []string{
			temperature.Celsius.String(),
			temperature.Fahrenheit.String(),
			temperature.Kelvin.String(),
		}
	}
	return nil
}
