package main

import (
	"github.com/spf13/cobra"
)

const programName = "mpags-cipher"

// passthrough marks the start of transform tokens so cobra never resolves a
// later token as a subcommand.
const passthrough = "--"

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:                programName + " [options]",
		Short:              "Encrypt or decrypt text with classical ciphers",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == passthrough {
				args = args[1:]
			}
			return runTransform(cmd, ctx, args)
		},
	}

	rootCmd.AddCommand(newCiphersCommand())
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// routeArgs leaves args untouched when the first token names a subcommand and
// otherwise prefixes them with the passthrough marker.
func routeArgs(root *cobra.Command, args []string) []string {
	if len(args) > 0 {
		for _, sub := range root.Commands() {
			if sub.Name() == args[0] {
				return args
			}
		}
	}
	return append([]string{passthrough}, args...)
}
