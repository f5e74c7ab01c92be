package cmd

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type listedGroup struct {
	Category string   `yaml:"category" json:"category"`
	Base     string   `yaml:"base" json:"base"`
	Units    []string `yaml:"units" json:"units"`
}

var wantGroups = []listedGroup{
	{"length", "meter", []string{"meter", "feet", "kilometer", "mile", "centimeter", "inch", "yard"}},
	{"mass", "kilogram", []string{"kilogram", "gram", "pound", "ounce", "ton", "stone"}},
	{"temperature", "celsius", []string{"celsius", "fahrenheit", "kelvin"}},
}

func TestUnitsText(t *testing.T) {
	code, stdout, stderr := run(t, "units")

	require.Equal(t, 0, code, stderr)
	want := "length (base: meter)\n  meter, feet, kilometer, mile, centimeter, inch, yard\n" +
		"mass (base: kilogram)\n  kilogram, gram, pound, ounce, ton, stone\n" +
		"temperature (base: celsius)\n  celsius, fahrenheit, kelvin\n"
	require.Equal(t, want, stdout)
}

func TestUnitsYAML(t *testing.T) {
	code, stdout, stderr := run(t, "units", "-o", "yaml", "mass")
	require.Equal(t, 0, code, stderr)

	var got []listedGroup
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	if diff := cmp.Diff(wantGroups[1:2], got); diff != "" {
		t.Errorf("units yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitsJSON(t *testing.T) {
	code, stdout, stderr := run(t, "list", "--format", "json")
	require.Equal(t, 0, code, stderr)

	var got []listedGroup
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	if diff := cmp.Diff(wantGroups, got); diff != "" {
		t.Errorf("units json mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitsCategoryCase(t *testing.T) {
	code, stdout, _ := run(t, "l", "Temperature", "LENGTH")

	require.Equal(t, 0, code)
	require.Equal(t, "temperature (base: celsius)\n  celsius, fahrenheit, kelvin\n"+
		"length (base: meter)\n  meter, feet, kilometer, mile, centimeter, inch, yard\n", stdout)
}

func TestUnitsErrors(t *testing.T) {
	code, stdout, stderr := run(t, "units", "volume")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, `Error: unknown category "volume"`)

	code, stdout, stderr = run(t, "units", "--format", "xml")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, `Error: unknown format "xml"`)
}

func TestUnitListing(t *testing.T) {
	want := "Units:\n" +
		"  length:       meter, feet, kilometer, mile, centimeter, inch, yard\n" +
		"  mass:         kilogram, gram, pound, ounce, ton, stone\n" +
		"  temperature:  celsius, fahrenheit, kelvin\n"
	require.Equal(t, want, unitListing())
}
