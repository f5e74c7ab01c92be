package uconv_test

import (
	"errors"
	"fmt"

	"github.com/lone-faerie/uconv"
)

func ExampleConvert() {
	v, err := uconv.Convert(100, "celsius", "fahrenheit")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.10f\n", v)

	// Output:
	// 212.0000000000
}

func ExampleConvert_incompatible() {
	_, err := uconv.Convert(1, "meter", "kilogram")
	fmt.Println(errors.Is(err, uconv.ErrIncompatibleCategories))
	fmt.Println(err)

	// Output:
	// true
	// cannot convert between different unit categories: meter (length) to kilogram (mass)
}

func ExampleUnits() {
	for _, c := range uconv.Categories() {
		fmt.Printf("%s (%s): %v\n", c, c.Base(), uconv.Units(c))
	}

	// Output:
	// length (meter): [meter feet kilometer mile centimeter inch yard]
	// mass (kilogram): [kilogram gram pound ounce ton stone]
	// temperature (celsius): [celsius fahrenheit kelvin]
}
