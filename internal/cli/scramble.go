package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random puzzle state",
	Long: `Generate a uniformly random puzzle state and print it as an
FTEN string. The state can be fed back to other commands via --start.`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")

		for i := 0; i < count; i++ {
			fmt.Println(ften.GenerateFTEN(fto.RandomRawState()))
		}
	},
}

func init() {
	scrambleCmd.Flags().IntP("count", "n", 1, "Number of random states to generate")
}
