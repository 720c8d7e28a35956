package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rehmanul/floorplan-pro-clean-sub000/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floorplan",
		Short: "CAD floor-plan layout engine: unit placement and corridor routing",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var sceneOnly bool

	cmd := &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Run the full pipeline and emit the layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0], sceneOnly)
		},
	}

	cmd.Flags().BoolVar(&sceneOnly, "scene", false, "emit only the 2D scene document")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a layout spec without running the full solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server exposing the solver over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
