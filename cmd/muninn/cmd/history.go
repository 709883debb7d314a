package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived message operations",
	Long: `List every message operation recorded in the local archive, in
the order they happened.

Example:
  muninn history --archive-dir=./archive`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		arc, err := openArchive(cmd)
		if err != nil {
			fmt.Printf("Error opening archive: %v\n", err)
			return
		}
		if arc == nil {
			fmt.Printf("No archive configured (set --archive-dir)\n")
			return
		}
		defer arc.Close()

		entries, err := arc.List()
		if err != nil {
			fmt.Printf("Error listing archive: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Printf("Archive is empty\n")
			return
		}

		for _, e := range entries {
			fmt.Printf("%s  %-6s  %s  %s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Operation, e.TypeCode, e.File)
			if e.Message != "" {
				fmt.Printf("  %q", e.Message)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
