package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantwpatil/compositor/internal/logging"
)

var (
	version    = "0.1.0"
	cfgFile    string
	logFormat  string
	logLevel   string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "compositor",
	Short: "Deterministic effects compositor",
	Long:  `compositor renders a recording + EDL + effect set into per-frame camera, cursor, and overlay state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logFormat, logLevel, os.Stderr)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("compositor v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in tunables)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text|json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(precomputeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
