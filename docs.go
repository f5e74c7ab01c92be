// Package uconv converts values between units of the same category.
//
// Three categories are supported: length (base unit meter), mass (base unit
// kilogram) and temperature. Length and mass units are rescaled linearly
// through their base unit; temperature units are converted through Celsius.
//
//	v, err := uconv.Convert(1, "mile", "meter") // 1609.344
//
// Unit names are case-sensitive. The unit tables are fixed at
// initialization, so all functions in this package are safe for concurrent
// use.
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/uconv
package uconv
