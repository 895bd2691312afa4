// Command rexen compiles a restricted regular expression into an NFA
// and either dumps the automaton as a Graphviz digraph or tests a
// candidate string against it.
//
//	rexen PATTERN           write the automaton as DOT to stdout
//	rexen PATTERN STRING    print whether PATTERN matches STRING
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/rexen/dot"
	"github.com/dhamidi/rexen/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var guard bool

	cmd := &cobra.Command{
		Use:   "rexen PATTERN [STRING]",
		Short: "Compile restricted regular expressions to NFAs",
		Long: "With only PATTERN, rexen writes the compiled automaton to stdout as a\n" +
			"Graphviz digraph. With PATTERN and STRING, it prints whether the pattern\n" +
			"matches the whole string.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)

			var opts []engine.Option
			if guard {
				opts = append(opts, engine.WithCycleGuard())
			}
			eng, err := engine.New(args[0], opts...)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return dot.Fprint(cmd.OutOrStdout(), eng.Automaton())
			}
			fmt.Fprintln(cmd.OutOrStdout(), eng.IsMatch(args[1]))
			return nil
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "raise log verbosity (repeatable)")
	cmd.Flags().BoolVar(&guard, "guard", false, "track visited search states so epsilon cycles cannot hang matching")

	return cmd
}
