package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ihex",
	Short: "Streaming Intel HEX decoder tools",
	Long: `ihex inspects, verifies and converts Intel HEX files using a
streaming byte-at-a-time decoder. Files are never loaded whole; every
byte is fed through the decoder state machine individually.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
