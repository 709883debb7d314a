package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/archive"
	"github.com/muninnlabs/muninn/pkg/png"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file> <type>",
	Short: "Recover a hidden message from a PNG file",
	Long: `Recover the message hidden under the given chunk type in a PNG
file. Only the first chunk of that type is read.

Example:
  muninn decode cat.png ruSt`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		filePath, typeCode := args[0], args[1]

		p, err := png.FromFile(filePath)
		if err != nil {
			fmt.Printf("Error reading PNG: %v\n", err)
			return
		}

		chunk := p.ChunkByType(typeCode)
		if chunk == nil {
			fmt.Printf("No chunk of type %s in '%s'\n", typeCode, filePath)
			return
		}

		text, err := chunk.Text()
		if err != nil {
			fmt.Printf("Error decoding message: %v\n", err)
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
				Message:   text,
				Operation: archive.OpDecode,
			})
		}

		fmt.Printf("%s\n", text)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
