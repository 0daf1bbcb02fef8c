package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paperkit/internal/config"
	"github.com/alexisbeaulieu97/paperkit/internal/logger"
)

type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

// loadAppContext merges configuration for cmd and builds the logger it
// writes to. Logs go to the command's error stream.
func loadAppContext(cmd *cobra.Command, flags *rootFlags, bindings map[string]string) (*appContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: flags.configPath,
		WorkingDir: wd,
		Flags:      cmd.Flags(),
		Bindings:   flags.bindings(bindings),
	})
	if err != nil {
		return nil, newCommandError(
			"load configuration",
			describeConfigSource(flags.configPath),
			err,
			"Check the config file and PAPERKIT_* environment variables.",
		)
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError("create logger", level, err, "Use one of trace, debug, info, warn or error.")
	}

	return &appContext{cfg: cfg, log: log.WithComponent(cmd.CommandPath())}, nil
}

func describeConfigSource(path string) string {
	if path != "" {
		return path
	}
	return "defaults, " + config.FileName + " and environment"
}
