package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/ihex"
	"github.com/moffa90/go-ihex/image"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Summarize the memory image described by a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		builder := image.NewBuilder()
		reader := ihex.New(builder.Callback())

		sawEnd, issues, err := decodeFile(args[0], reader)
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			for _, iss := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), iss)
			}
			return fmt.Errorf("%d error(s) in %s", len(issues), args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:           %s\n", args[0])
		fmt.Fprintf(out, "Decoded bytes:  %d\n", builder.Len())
		fmt.Fprintf(out, "EOF record:     %v\n", sawEnd)

		if lo, hi, ok := builder.Extent(); ok {
			fmt.Fprintf(out, "Extent:         0x%08X - 0x%08X\n", lo, hi)
		}

		segments := builder.Segments()
		fmt.Fprintf(out, "Segments:       %d\n", len(segments))
		for _, seg := range segments {
			fmt.Fprintf(out, "  0x%08X - 0x%08X  %d bytes\n",
				seg.Base, seg.End()-1, len(seg.Data))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
