//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	subcommands = append(subcommands, NewCmdDocGen)
}

// NewCmdDocGen returns the hidden [cobra.Command] used for generating
// documentation of the command tree.
func NewCmdDocGen() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "docs", "Output directory")

	man := &cobra.Command{
		Use:   "man",
		Short: "Generate man pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hdr := &doc.GenManHeader{
				Title:   "UCONV",
				Section: "1",
			}
			dir := dir + "/man"
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), hdr, dir)
		},
	}

	markdown := &cobra.Command{
		Use:   "markdown",
		Short: "Generate markdown pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := dir + "/md"
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenMarkdownTree(cmd.Root(), dir)
		},
	}

	cmd.AddCommand(man, markdown)

	return cmd
}
