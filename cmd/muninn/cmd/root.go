/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/archive"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "muninn",
	Short: "Muninn - hide messages in PNG files",
	Long: `Muninn hides, recovers and removes secret messages carried as
auxiliary chunks inside PNG files, without touching the image data.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global archive directory flag; empty disables archiving
	rootCmd.PersistentFlags().String("archive-dir", "", "Directory for the message archive (empty = no archive)")
}

// openArchive opens the archive named by --archive-dir, or returns nil
// when archiving is disabled.
func openArchive(cmd *cobra.Command) (*archive.Archive, error) {
	dir, _ := cmd.Flags().GetString("archive-dir")
	if dir == "" {
		return nil, nil
	}
	return archive.Open(dir)
}

// recordEntry appends to the archive if one is open.
func recordEntry(cmd *cobra.Command, arc *archive.Archive, e archive.Entry) {
	if arc == nil {
		return
	}
	if _, err := arc.Record(e); err != nil {
		cmd.Printf("Warning: failed to archive entry: %v\n", err)
	}
}
