package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fto",
	Short: "A two-phase solver for the Face-Turning Octahedron",
	Long: `fto is a coordinate-based solver for the Face-Turning Octahedron.
It precomputes move and pruning tables, then searches for turn sequences
that reduce a scrambled puzzle to the phase-1 goal.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(serveCmd)
}
