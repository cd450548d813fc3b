package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/fto"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build and save the move tables",
	Long: `Build the move tables for every coordinate family and save
them to disk, timing each stage. Other commands load this file instead
of regenerating the tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("tables")

		fmt.Println("Generating move tables")
		start := time.Now()
		tables := fto.GenerateMoveTables()
		fmt.Printf("Generated in %v\n", time.Since(start))

		start = time.Now()
		if err := tables.Save(path); err != nil {
			fmt.Printf("Error saving move tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %s in %v\n", path, time.Since(start))

		fmt.Println("Building pruning tables")
		start = time.Now()
		pruning := fto.NewPruningTable(fto.AllFaces())
		pruning.Populate(tables)
		fmt.Printf("Built in %v\n", time.Since(start))
	},
}

func init() {
	tablesCmd.Flags().StringP("tables", "t", "movetables.dat", "Move table file to write")
}
