package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zhannixing/sway/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sway-ir",
	Short: "Inspect the metadata the IR attaches to values",
	Long:  `sway-ir builds and dumps the IR metadata side-store (source spans, storage slot tokens, storage effects) for sway source files`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
