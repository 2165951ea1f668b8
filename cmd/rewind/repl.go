package main

import (
	"context"
	"os"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/rewind/internal/cli"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/observability"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Edit a value interactively",
	Long:  `Starts an interactive session over a single string value. Type 'help' for the command list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		initial, _ := cmd.Flags().GetString("initial")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		debug, _ := cmd.Flags().GetBool("debug")

		var hooks history.LifecycleHooks
		if debug {
			hooks = observability.LogHooks(logger)
		}

		// SIGTERM ends the session, Ctrl+C is handled by the REPL itself.
		sigCtx := lifecycle.NewSignalContext(context.Background(), lifecycle.WithCancelOnInterrupt(false))
		defer sigCtx.Stop()
		defer sigCtx.Cancel()

		_, err = cli.RunREPL(sigCtx, cli.ReplOptions{
			Initial: initial,
			In:      os.Stdin,
			Out:     os.Stdout,
			Banner:  !noBanner && cli.IsTerminal(os.Stdout),
			Logger:  logger,
			Hooks:   hooks,

			Interrupts: true,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("initial", "", "Initial value")
	replCmd.Flags().Bool("no-banner", false, "Do not print the banner")
}
