package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/seedxor/internal/cli"
	"github.com/Davincible/seedxor/pkg/config"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	level.Set(cli.ParseLogLevel(cfg.UI.LogLevel))

	rootCmd := cli.NewRootCommand(cfg, level, fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit))

	if err := rootCmd.Execute(); err != nil {
		if cli.IsInputError(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		} else {
			slog.Error("Command execution failed", "error", err)
		}
		os.Exit(1)
	}
}
