package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/archive"
	"github.com/muninnlabs/muninn/pkg/png"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <file> <type>",
	Short: "Remove a hidden message chunk from a PNG file",
	Long: `Remove the first chunk of the given type from a PNG file and
rewrite the file in place. All other chunks are preserved byte for byte.

Example:
  muninn remove cat.png ruSt`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		filePath, typeCode := args[0], args[1]

		p, err := png.FromFile(filePath)
		if err != nil {
			fmt.Printf("Error reading PNG: %v\n", err)
			return
		}

		removed, err := p.RemoveByType(typeCode)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := p.WriteFile(filePath); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			return
		}

		arc, err := openArchive(cmd)
		if err != nil {
			fmt.Printf("Warning: failed to open archive: %v\n", err)
		} else if arc != nil {
			defer arc.Close()
			recordEntry(cmd, arc, archive.Entry{
				File:      filePath,
				TypeCode:  typeCode,
				Operation: archive.OpRemove,
			})
		}

		fmt.Printf("Removed %s chunk (%d data bytes) from '%s'\n", removed.Type(), removed.Length(), filePath)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
