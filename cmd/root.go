// Package cmd implements the uconv command-line interface.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lone-faerie/uconv"
	"github.com/lone-faerie/uconv/internal/build"
	"github.com/lone-faerie/uconv/log"
)

//go:embed help/root.md
var rootHelp string

var defaultHelpTemplate = (&cobra.Command{}).HelpTemplate()

// subcommands are added to the root command by [NewCmdRoot].
var subcommands = []func() *cobra.Command{
	NewCmdUnits,
}

// NewCmdRoot returns the root [cobra.Command], which converts a value
// between two units.
//
// Usage:
//
//	uconv [flags] <value> <from_unit> <to_unit>
//	uconv [command]
//
// Flags:
//
//	-h, --help                help for uconv
//	-l, --log level           Log level (debug, info, warn, error, disabled) (default DISABLED)
//	    --log-format string   Log format (text, json) (default "text")
//	-v, --version             version for uconv
func NewCmdRoot() *cobra.Command {
	var (
		logLevel  = log.LevelFlag(log.LevelDisabled)
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "uconv [flags] <value> <from_unit> <to_unit>",
		Short: "Convert a value between units",
		Long:  rootHelp,
		Example: `  uconv 100 celsius fahrenheit
  uconv 1 mile meter
  uconv -40 fahrenheit kelvin`,
		Version: build.Version(),
		Args:    exactArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := setLogHandler(cmd.ErrOrStderr(), logFormat); err != nil {
				return &UsageError{err}
			}
			log.SetLogLevel(logLevel.Level())
			return nil
		},
		RunE:              runConvert,
		ValidArgsFunction: completeUnits,

		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		CompletionOptions:     cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	cmd.PersistentFlags().VarP(&logLevel, "log", "l", "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions(
		[]cobra.Completion{"text", "json"},
		cobra.ShellCompDirectiveNoFileComp,
	))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	for _, newCmd := range subcommands {
		cmd.AddCommand(newCmd())
	}

	// Commands without their own template inherit this one, so the unit
	// listing is limited to the root.
	cmd.SetHelpTemplate(defaultHelpTemplate +
		"{{if not .HasParent}}\n" + unitListing() + "\n" + fullDocsFooter + "\n{{end}}")
	cmd.SetVersionTemplate(versionTemplate())

	return cmd
}

// versionTemplate returns the template of --version, which includes the
// build time when it is known.
func versionTemplate() string {
	t := "{{.Name}} version {{.Version}}\n"
	if bt := build.BuildTime(); bt != "" {
		t += "Build Time: " + bt + "\n"
	}
	return t
}

func setLogHandler(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		log.SetTextHandler(w)
	case "json":
		log.SetJSONHandler(w)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{fmt.Errorf("accepts %d arg(s), received %d", n, len(args))}
		}
		return nil
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := parseValue(args[0])
	if err != nil {
		return &ExitError{err, 1}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		log.Warn("Value is not finite", "value", args[0])
	}

	from, to := args[1], args[2]

	result, err := uconv.Convert(value, from, to)
	if err != nil {
		log.Debug("Conversion failed", "from", from, "to", to, "cause", err)
		return &ExitError{err, 1}
	}

	log.Debug("Converted",
		"category", uconv.CategoryOf(from),
		"value", value,
		"from", from,
		"to", to,
		"result", result,
	)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.10f\n", result)
	return err
}

// completeUnits completes any unit for <from_unit> and only units of the
// same category for <to_unit>.
func completeUnits(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	switch len(args) {
	case 1:
		var units []cobra.Completion
		for _, c := range uconv.Categories() {
			for _, u := range uconv.Units(c) {
				units = append(units, cobra.CompletionWithDesc(u, c.String()))
			}
		}
		return units, cobra.ShellCompDirectiveNoFileComp
	case 2:
		return uconv.Units(uconv.CategoryOf(args[1])), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// Run executes the root command with the given arguments and returns the
// exit code. Errors are printed to stderr, prefixed by "Error:". Usage
// errors are followed by the usage of the command.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil args.
		args = []string{}
	}

	root := NewCmdRoot()

	fs := pflag.NewFlagSet(root.Name(), pflag.ContinueOnError)
	fs.AddFlagSet(root.PersistentFlags())
	fs.AddFlagSet(root.Flags())

	root.SetArgs(escapeNegative(fs, args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	c, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, "Error:", err)

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprint(stderr, c.UsageString())
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return 1
}

// Execute runs the root command with the arguments of the process.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}
