package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/uconv"
	"github.com/lone-faerie/uconv/log"
)

//go:embed help/units.md
var unitsHelp string

// unitGroup is the listing of a single category.
type unitGroup struct {
	Category uconv.Category `yaml:"category" json:"category"`
	Base     string         `yaml:"base" json:"base"`
	Units    []string       `yaml:"units" json:"units"`
}

func unitGroups(cc ...uconv.Category) []unitGroup {
	if len(cc) == 0 {
		cc = uconv.Categories()
	}
	groups := make([]unitGroup, len(cc))
	for i, c := range cc {
		groups[i] = unitGroup{
			Category: c,
			Base:     c.Base(),
			Units:    uconv.Units(c),
		}
	}
	return groups
}

func printText(w io.Writer, groups []unitGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "  %-13s %s\n", g.Category.String()+":", strings.Join(g.Units, ", "))
	}
}

func printYAML(w io.Writer, groups []unitGroup) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(groups)
}

func printJSON(w io.Writer, groups []unitGroup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}

// unitListing returns the text listing of every unit, used in the help of
// the root command.
func unitListing() string {
	var b strings.Builder
	b.WriteString("Units:\n")
	printText(&b, unitGroups())
	return b.String()
}

// NewCmdUnits returns the [cobra.Command] used for listing supported units.
//
// If categories are given as arguments, only their units are listed.
//
// Usage:
//
//	uconv units [flags] [category]...
//
// Aliases:
//
//	units, list, l
//
// Flags:
//
//	-o, --format string   Output format (text, yaml, json) (default "text")
//	-h, --help            help for units
func NewCmdUnits() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "units [flags] [category]...",
		Aliases: []string{"list", "l"},
		Short:   "List supported units",
		Long:    unitsHelp,
		Example: `  uconv units
  uconv units mass temperature
  uconv units --format yaml length`,
		ValidArgs: []cobra.Completion{
			cobra.CompletionWithDesc("length", "base unit meter"),
			cobra.CompletionWithDesc("mass", "base unit kilogram"),
			cobra.CompletionWithDesc("temperature", "via celsius"),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := make([]uconv.Category, len(args))
			for i, arg := range args {
				c, err := uconv.ParseCategory(arg)
				if err != nil {
					return &ExitError{err, 1}
				}
				cc[i] = c
			}
			log.Debug("Listing units", "categories", cc, "format", format)
			return listUnits(cmd.OutOrStdout(), format, unitGroups(cc...))
		},

		DisableFlagsInUseLine: true,
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format (text, yaml, json)")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]cobra.Completion{"text", "yaml", "json"},
		cobra.ShellCompDirectiveNoFileComp,
	))

	cmd.SetHelpTemplate(defaultHelpTemplate + "\n" + fullDocsFooter + "\n")

	return cmd
}

func listUnits(w io.Writer, format string, groups []unitGroup) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, g := range groups {
			fmt.Fprintf(w, "%s (base: %s)\n  %s\n", g.Category, g.Base, strings.Join(g.Units, ", "))
		}
		return nil
	case "yaml", "yml":
		return printYAML(w, groups)
	case "json":
		return printJSON(w, groups)
	}
	return &ExitError{fmt.Errorf("unknown format %q", format), 1}
}
