package uconv

import "errors"

var (
	ErrUnsupportedUnit        = errors.New("unsupported unit")
	ErrIncompatibleCategories = errors.New("incompatible unit categories")
)

// UnitError is returned when a unit name is not in any category.
type UnitError struct {
	Unit string
}

func (e *UnitError) Error() string {
	return ErrUnsupportedUnit.Error() + ": " + e.Unit
}

func (e *UnitError) Unwrap() error {
	return ErrUnsupportedUnit
}

// CategoryError is returned when the two units of a conversion belong to
// different categories.
type CategoryError struct {
	From, To       string
	FromCat, ToCat Category
}

func (e *CategoryError) Error() string {
	return "cannot convert between different unit categories: " +
		e.From + " (" + e.FromCat.String() + ") to " +
		e.To + " (" + e.ToCat.String() + ")"
}

func (e *CategoryError) Unwrap() error {
	return ErrIncompatibleCategories
}
