package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muninnlabs/muninn/pkg/png"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "List the chunks of a PNG file",
	Long: `List every chunk of a PNG file in on-disk order, with its type
code, data length and property flags. Chunks are streamed, so large
files are not held in memory.

Example:
  muninn print cat.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			return
		}
		defer file.Close()

		reader := png.NewChunkReader(file)
		totalSize := png.SignatureSize
		index := 0
		for {
			chunk, err := reader.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				fmt.Printf("Error reading chunk %d: %v\n", index, err)
				return
			}

			if index == 0 {
				fmt.Printf("File: %s\n", filePath)
			}
			fmt.Printf("  chunk#%d{ type: %s, length: %d, critical: %t, safe_to_copy: %t }\n",
				index, chunk.Type(), chunk.Length(), chunk.Type().IsCritical(), chunk.Type().IsSafeToCopy())

			totalSize += chunk.WireSize()
			index++
		}

		if index == 0 {
			fmt.Printf("File: %s\n", filePath)
		}
		fmt.Printf("Total: %d chunks, %d bytes\n", index, totalSize)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
