package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/api"
	"github.com/muninnlabs/muninn/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the muninn REST API server. The server exposes encode,
decode, remove and chunk-listing operations over uploaded PNG files,
plus the message archive and prometheus metrics.

Flags override values from the config file when both are present.

Examples:
  muninn serve --api-key=mysecretkey --port=8080
  muninn serve --config=~/.config/muninn/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		archiveDir, _ := cmd.Flags().GetString("archive-dir")

		serverConfig := api.ServerConfig{
			Port:       port,
			Bind:       bind,
			APIKey:     apiKey,
			ArchiveDir: archiveDir,
		}

		if configPath == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
			configPath = config.GetDefaultConfigPath()
		}
		if configPath != "" {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				return
			}
			if !cmd.Flags().Changed("port") {
				serverConfig.Port = cfg.Port
			}
			if !cmd.Flags().Changed("bind") {
				serverConfig.Bind = cfg.Bind
			}
			if serverConfig.APIKey == "" {
				serverConfig.APIKey = cfg.Security.APIKey
			}
			if serverConfig.ArchiveDir == "" {
				serverConfig.ArchiveDir = cfg.ArchiveDir
			}
		}

		if serverConfig.APIKey == "" || serverConfig.APIKey == "auto" {
			fmt.Printf("Error: an API key is required (set --api-key or run 'muninn init')\n")
			return
		}

		if err := api.StartServer(serverConfig); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to the config file")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
}
