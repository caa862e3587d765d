package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/switchubuntu/internal/config"
	"github.com/ziadkadry99/switchubuntu/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "switchubuntu",
	Short: "Marketing site that helps people switch to Ubuntu",
	Long: `switchubuntu serves the "Switch to Ubuntu" site: the landing page,
installation guide, software catalog, community and why-Ubuntu pages,
and a simulated Ubuntu desktop to try in the browser. It can also
export the site as static files and expose its content to AI agents
over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from the config level and the
// --verbose flag.
func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := logging.New(string(cfg.LogLevel), verbose)
	exitOnError(err)
	return logger
}
