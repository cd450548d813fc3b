package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/fto/internal/fto"
	"github.com/ehrlich-b/fto/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server that exposes solving, scrambling and
rendering over HTTP. Move and pruning tables are prepared before the
server starts listening.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		tablesPath, _ := cmd.Flags().GetString("tables")
		limit, _ := cmd.Flags().GetUint8("limit")

		tables := loadTables(tablesPath, false)
		solver := fto.NewPhase1Solver(tables, limit)

		fmt.Printf("Starting web server at http://%s:%s\n", host, port)

		server := web.NewServer(tables, solver)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().StringP("tables", "t", "movetables.dat", "Move table file (regenerated if missing)")
	serveCmd.Flags().Uint8P("limit", "l", 14, "Maximum search depth for solves")
}
