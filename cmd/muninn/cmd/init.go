/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize muninn configuration",
	Long: `Initialize muninn with a config file and a generated API key for
the REST server.

This command will:
- Create the config directory if needed
- Generate a random API key
- Write the config file with secure permissions

Examples:
  muninn init
  muninn init --config=./muninn.yaml --archive-dir=./archive`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		archiveDir, _ := cmd.Flags().GetString("archive-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			fmt.Printf("Config already exists at %s (use --force to overwrite)\n", configPath)
			return
		}

		cfg, err := config.BootstrapConfig(configPath, archiveDir)
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		fmt.Printf("Wrote config to %s\n", configPath)
		fmt.Printf("Archive directory: %s\n", cfg.ArchiveDir)
		fmt.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path to write the config file")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
