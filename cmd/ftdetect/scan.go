package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackvity/ftdetect/internal/cli"
	"github.com/stackvity/ftdetect/internal/cli/config"
)

func newScanCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Print the file type breakdown of a directory",
		Long: `scan walks a directory, determines the type of every eligible file and
prints the share of each type among the detected files.

With --breakdown the files of each type are listed below the percentages;
--filter restricts that listing to types whose name matches a regex.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("input") {
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}

			ctx, cancel := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			opts, logger, err := config.LoadAndValidate(g.cfgFile, g.profileName, version, g.verbose, cmd.Flags())
			if err != nil {
				return err
			}
			noTUI, _ := cmd.Flags().GetBool("no-tui")
			return cli.Run(ctx, opts, logger,
				cli.Streams{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				cli.RunOptions{NoTUI: noTUI})
		},
	}
	config.DefineScanFlags(cmd.Flags())
	return cmd
}

// contextOrBackground guards commands executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
