package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/uconv`

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// UsageError is an error in how the command was invoked, i.e. the wrong
// number of arguments or an unknown flag. The usage is printed along with it.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

var ErrInvalidValue = errors.New("invalid numeric value")

// ValueError is returned when the value to convert is not a number.
type ValueError struct {
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return ErrInvalidValue.Error() + " " + strconv.Quote(e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValueError{Value: s, Err: err}
	}
	return v, nil
}

// escapeNegative rewrites args so that a negative number is not parsed as a
// shorthand flag. When any argument before an existing "--" is a negative
// number, flags known to fs (with their values) are moved to the front and
// every other argument follows a "--". Otherwise args are returned as is.
func escapeNegative(fs *pflag.FlagSet, args []string) []string {
	var (
		flags, positional []string
		negative          bool
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			positional = append(positional, arg)
		case len(arg) > 1 && arg[0] == '-':
			flags = append(flags, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(flags)+len(positional)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether the flag arg, given without "=value", consumes
// the following argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = fs.Lookup(name)
	} else if len(arg) == 2 {
		f = fs.ShorthandLookup(arg[1:])
	}

	return f != nil && f.NoOptDefVal == ""
}
