// Command mazerun solves, plays and generates mazes from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/mazebot-solver/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(config.LoadClient()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mazerun",
		Short: "Solve mazebot mazes depth-first",
		Long: `mazerun walks a maze depth-first from A to B, backtracking to the last
fork at every dead end, and prints the move log.

Mazes come from the mazebot API, a text file of rows, or the local generator.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("url", cfg.MazebotURL, "Base URL of the mazebot API")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze and print the directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, cfg)
		},
	}
	addSourceFlags(solveCmd, cfg)
	solveCmd.Flags().Bool("animate", false, "Animate the search in the terminal")
	solveCmd.Flags().Duration("delay", defaultDelay, "Pause between animation frames")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Walk a maze with the keyboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfg)
		},
	}
	addSourceFlags(playCmd, cfg)

	generateCmd := &cobra.Command{
		Use:   "generate WxH",
		Short: "Print a generated maze",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().Uint64("seed", 0, "Generator seed (default: random)")

	rootCmd.AddCommand(solveCmd, playCmd, generateCmd)
	return rootCmd
}

func addSourceFlags(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().String("file", "", "Read the maze from a text file, one row per line")
	cmd.Flags().String("generate", "", "Generate a WxH maze locally instead of fetching one")
	cmd.Flags().Uint64("seed", 0, "Generator seed (default: random)")
	cmd.Flags().Int("min-size", cfg.MazeMinSize, "Smallest mazebot maze to request")
	cmd.Flags().Int("max-size", cfg.MazeMaxSize, "Largest mazebot maze to request")
	cmd.Flags().Bool("submit", false, "Submit the directions to mazebot")
	cmd.MarkFlagsMutuallyExclusive("file", "generate")
}

func errorf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), config.ColorRed+format+config.ColorReset+"\n", args...)
}
