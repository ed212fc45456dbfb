package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/ihex"
	"github.com/moffa90/go-ihex/image"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert a file to a flat binary image",
	Long: `Convert decodes FILE into a memory image and writes it as a flat
binary spanning the populated address extent. Gaps between segments are
set to the fill byte.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		fill, _ := cmd.Flags().GetUint8("fill")

		builder := image.NewBuilder()
		reader := ihex.New(builder.Callback())

		_, issues, err := decodeFile(args[0], reader)
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			for _, iss := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), iss)
			}
			return fmt.Errorf("%d error(s) in %s", len(issues), args[0])
		}

		data, err := builder.Bytes(fill)
		if err != nil {
			return err
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		lo, _, _ := builder.Extent()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes at base 0x%08X\n",
			output, len(data), lo)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "image.bin", "Output file for the binary image")
	convertCmd.Flags().Uint8("fill", 0xFF, "Fill byte for gaps between segments")
	rootCmd.AddCommand(convertCmd)
}
