package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/ihex"
)

var verifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Check record structure and checksums",
	Long: `Verify streams FILE through the decoder and reports every byte that
produces an error status, with its line and column. The exit status is
non-zero when any error was found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eofChecksum, _ := cmd.Flags().GetBool("eof-checksum")

		var opts []ihex.Option
		if eofChecksum {
			opts = append(opts, ihex.WithEOFChecksumValidation())
		}

		reader := ihex.New(nil, opts...)
		sawEnd, issues, err := decodeFile(args[0], reader)
		if err != nil {
			return err
		}

		for _, iss := range issues {
			fmt.Fprintln(cmd.OutOrStdout(), iss)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d error(s) in %s", len(issues), args[0])
		}

		if !sawEnd {
			fmt.Fprintln(cmd.OutOrStdout(), "warning: no end-of-file record")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", args[0])
		return nil
	},
}

func init() {
	verifyCmd.Flags().Bool("eof-checksum", false,
		"validate the checksum of end-of-file records as well")
	rootCmd.AddCommand(verifyCmd)
}
