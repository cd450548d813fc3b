package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
	"github.com/ehrlich-b/fto/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Render a state as an SVG image",
	Long: `Render the puzzle after a scramble as an SVG of the unfolded
octahedron. With no scramble the solved state is drawn.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startFTEN, _ := cmd.Flags().GetString("start")
		output, _ := cmd.Flags().GetString("output")

		state := fto.SolvedRawState()
		if startFTEN != "" {
			parsed, err := ften.ParseFTEN(startFTEN)
			if err != nil {
				fmt.Printf("Error parsing starting state: %v\n", err)
				os.Exit(1)
			}
			state = parsed
		}

		if len(args) > 0 {
			turns, err := fto.ParseSequence(args[0])
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			state.ApplySequence(turns)
		}

		svg := render.SVG(state)
		if output == "-" {
			fmt.Print(svg)
			return
		}
		if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
			fmt.Printf("Error writing SVG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", output)
	},
}

func init() {
	showCmd.Flags().String("start", "", "Starting state as an FTEN string (default: solved)")
	showCmd.Flags().StringP("output", "o", "state.svg", "Output file, or - for stdout")
}
