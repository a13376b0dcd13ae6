package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vitrin/api/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "vitrin",
	Short:         "Site builder API: template resolution, section editing and publishing",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(migrateCmd)
}

// newLogger writes JSON to stderr so stdout stays clean for command output.
func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
