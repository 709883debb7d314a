package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/archive"
	"github.com/muninnlabs/muninn/pkg/codec"
	"github.com/muninnlabs/muninn/pkg/png"
)

var encodeOutput string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <file> <type> <message>",
	Short: "Hide a message in a PNG file",
	Long: `Hide a message in a PNG file by appending a chunk of the given
type carrying the message bytes. The image itself is untouched.

Example:
  muninn encode cat.png ruSt "meet me at dawn"
  muninn encode cat.png ruSt "meet me at dawn" -o cat_with_secret.png`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		filePath, typeCode, message := args[0], args[1], args[2]

		p, err := png.FromFile(filePath)
		if err != nil {
			fmt.Printf("Error reading PNG: %v\n", err)
			return
		}

		chunk, err := codec.NewTextChunk(typeCode, message)
		if err != nil {
			fmt.Printf("Error building chunk: %v\n", err)
			return
		}
		p.Append(chunk)

		outPath := encodeOutput
		if outPath == "" {
			outPath = filePath
		}
		if err := p.WriteFile(outPath); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			return
		}

		arc, err := openArchive(cmd)
		if err != nil {
			fmt.Printf("Warning: failed to open archive: %v\n", err)
		} else if arc != nil {
			defer arc.Close()
			recordEntry(cmd, arc, archive.Entry{
				File:      outPath,
				TypeCode:  typeCode,
				Message:   message,
				Operation: archive.OpEncode,
			})
		}

		fmt.Printf("Hidden %d-byte message in '%s' under chunk type %s\n", chunk.Length(), outPath, typeCode)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the result to this path instead of in place")
}
