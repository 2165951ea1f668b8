package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/rewind/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <script.yaml>",
	Short: "Replay a command script",
	Long: `Replays a YAML script of commands and prints the resulting timeline.

Script format:
  initial: draft
  commands:
    - {kind: set, value: first}
    - {kind: undo}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		report, _ := cmd.Flags().GetBool("report")
		style, _ := cmd.Flags().GetString("style")

		script, err := cli.LoadScript(args[0])
		if err != nil {
			return err
		}
		if report && style == "" && !cli.IsTerminal(os.Stdout) {
			style = "notty"
		}

		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		_, err = cli.Play(script, cli.PlayOptions{
			Name:   name,
			Out:    os.Stdout,
			Report: report,
			Style:  style,
			Logger: logger,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("report", false, "Render a markdown report of the final timeline")
	playCmd.Flags().String("style", "", "Report style (dark, light, notty); detected when empty")
}
