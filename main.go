package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	GitCommit string
	GitTag    string
	BuildTime string
)

//	@title			Bookshelf API
//	@version		1.0
//	@description	Health check and book lookup served next to the frontend static files.
//	@BasePath		/

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal("application exited. check logs for more details. ", err)
	}
}

// NewRootCommand builds the command line. The root command runs the server.
func NewRootCommand() *cobra.Command {
	var configFile, envFile string

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Serves the frontend static files and the books api",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(configFile, envFile)
			if err != nil {
				return fmt.Errorf("application failed to initialized: %w", err)
			}
			return app.Run()
		},
	}
	root.Flags().StringVarP(&configFile, "config", "c", DefaultConfigFile, "path to the yaml configuration file")
	root.Flags().StringVarP(&envFile, "env", "e", DefaultEnvFile, "path to the environment configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Prints the build details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tag: %s\ncommit: %s\nbuilt: %s\n", GitTag, GitCommit, BuildTime)
		},
	})
	return root
}
