package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
)

var twistCmd = &cobra.Command{
	Use:   "twist [turns]",
	Short: "Apply turns to a state and show the result",
	Long: `Apply a sequence of turns to a state and print the resulting
state as an FTEN string.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startFTEN, _ := cmd.Flags().GetString("start")
		verbose, _ := cmd.Flags().GetBool("verbose")

		state := fto.SolvedRawState()
		if startFTEN != "" {
			parsed, err := ften.ParseFTEN(startFTEN)
			if err != nil {
				fmt.Printf("Error parsing starting state: %v\n", err)
				os.Exit(1)
			}
			state = parsed
		}

		turns, err := fto.ParseSequence(args[0])
		if err != nil {
			fmt.Printf("Error parsing turns: %v\n", err)
			os.Exit(1)
		}

		state.ApplySequence(turns)

		if verbose {
			fmt.Printf("State: %v\n", state)
		}
		fmt.Println(ften.GenerateFTEN(state))
	},
}

func init() {
	twistCmd.Flags().String("start", "", "Starting state as an FTEN string (default: solved)")
	twistCmd.Flags().BoolP("verbose", "v", false, "Also print the piece arrays")
}
