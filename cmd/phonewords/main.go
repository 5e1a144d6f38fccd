package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/phonewords/internal/cli"
	"codeberg.org/snonux/phonewords/internal/processor"
)

func main() {
	// Execute command
	if err := newRootCommand(cli.NewFlags()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(flags *cli.Flags) *cobra.Command {
	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Config is read before the run so that a broken --config file is
	// reported like any other error
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cli.InitConfig(flags.CfgFile)
	}

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	return rootCmd
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	flags.Resolve()

	// Usage only makes sense for argument errors, not for failed runs
	cmd.SilenceUsage = true

	logger := cli.NewLogger(flags.LogLevel, flags.LogFormat, cmd.ErrOrStderr())
	proc := processor.NewProcessor(flags, logger)

	_, err := proc.Run(args[0], args[1], cmd.OutOrStdout())
	return err
}
