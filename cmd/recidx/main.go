// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

// Command recidx is an interactive shell over an in-memory student index.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kesimo/recidx"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(getEnvOrDefault("RECIDX_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	config, err := recidx.LoadConfig(os.Getenv("RECIDX_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	config.Backend = recidx.Backend(getEnvOrDefault("RECIDX_BACKEND", string(config.Backend)))
	config.SeedFile = getEnvOrDefault("RECIDX_SEED", config.SeedFile)
	if config.HistoryFile == "" {
		home, _ := os.UserHomeDir()
		config.HistoryFile = filepath.Join(home, ".recidx_history")
	}
	config.Logger = logger

	e, err := recidx.New(config)
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	if config.SeedFile != "" {
		n, err := loadSeedFile(e, config.SeedFile)
		if err != nil {
			slog.Error("failed to load seed file", "file", config.SeedFile, "error", err)
			os.Exit(1)
		}
		slog.Info("seed loaded", "file", config.SeedFile, "records", n)
	}
	slog.Info("recidx started", "backend", config.Backend, "records", e.Len())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "recidx> ",
		HistoryFile: config.HistoryFile,
	})
	if err != nil {
		slog.Error("failed to create readline", "error", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			slog.Error("reading input", "error", err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		quit, err := execute(e, rl.Stdout(), line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		if quit {
			break
		}
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
