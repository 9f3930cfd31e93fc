// Package cmd implements the argand command line.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/argand"
)

// NewRootCmd builds the argand command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "argand",
		Short: "Complex numbers in cartesian and polar form",
		Long: `argand builds complex numbers from cartesian parts or from modulus
and argument, does arithmetic on them, prints them in cartesian, polar
and Euler form, and draws them as vectors on an Argand diagram.

Commands:
  show    - print one number in every form
  calc    - add, sub, mul, div, pow or conj
  sketch  - render a scene of vectors to PNG
  window  - show a scene in a desktop window`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				argand.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(newShowCmd(), newCalcCmd(), newSketchCmd(), newVersionCmd())
	return root
}
