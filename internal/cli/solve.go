package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled puzzle to the phase-1 goal",
	Long: `Solve a scrambled puzzle using the phase-1 search.
The scramble should be provided as a string of turns, e.g. "R L' U BR'".

Use --headless for programmatic output (space-separated turns only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		limit, _ := cmd.Flags().GetUint8("limit")
		tablesPath, _ := cmd.Flags().GetString("tables")
		headless, _ := cmd.Flags().GetBool("headless")
		startFTEN, _ := cmd.Flags().GetString("start")

		state := fto.SolvedCoordState()
		if startFTEN != "" {
			raw, err := ften.ParseFTEN(startFTEN)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting state: %v\n", err)
				}
				os.Exit(1)
			}
			state = raw.ToCoords()
		}

		if !headless {
			fmt.Printf("Solving scramble: %s\n", scramble)
			if startFTEN != "" {
				fmt.Printf("Starting from state: %s\n", startFTEN)
			}
		}

		turns, err := fto.ParseSequence(scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}

		tables := loadTables(tablesPath, headless)
		state.ApplySequence(tables, turns)

		if !headless {
			fmt.Println("Building pruning tables")
		}
		start := time.Now()
		solver := fto.NewPhase1Solver(tables, limit)
		if !headless {
			fmt.Printf("Pruning tables ready in %v\n", time.Since(start))
		}

		result, err := solver.Solve(state)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving puzzle: %v\n", err)
			}
			os.Exit(1)
		}

		if headless {
			fmt.Print(fto.FormatSequence(result.Solution))
		} else {
			fmt.Printf("Solution: %s\n", fto.FormatSequence(result.Solution))
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

// loadTables loads persisted move tables, falling back to a fresh build.
func loadTables(path string, headless bool) *fto.MoveTables {
	if !headless {
		fmt.Println("Loading move tables")
	}
	start := time.Now()
	tables, err := fto.TryLoadOrGenerate(path)
	if err != nil && !headless {
		fmt.Printf("Warning: %v\n", err)
	}
	if !headless {
		fmt.Printf("Move tables ready in %v\n", time.Since(start))
	}
	return tables
}

func init() {
	solveCmd.Flags().Uint8P("limit", "l", 14, "Maximum search depth")
	solveCmd.Flags().StringP("tables", "t", "movetables.dat", "Move table file (regenerated if missing)")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated turns for programmatic use")
	solveCmd.Flags().String("start", "", "Starting state as an FTEN string (default: solved)")
}
