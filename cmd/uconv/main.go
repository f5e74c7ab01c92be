// Command uconv converts a value between units of length, mass or
// temperature.
//
//	uconv <value> <from_unit> <to_unit>
package main

import (
	"os"

	"github.com/lone-faerie/uconv/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
