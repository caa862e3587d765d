package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/switchubuntu/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize switchubuntu configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes a .switchubuntu.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
