// glyphtool is a CLI utility for inspecting and playing back glyphset
// keyframe files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/config"
	"github.com/Faultbox/zincmorph/internal/logger"
)

func main() {
	// Global flags (-config, -debug, -duration, ...) come before the command.
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]
	logger.Debug("glyphtool starting", zap.String("command", command), zap.Strings("args", args))

	switch command {
	case "info":
		err = cmdInfo(args)
	case "sample":
		err = cmdSample(cfg, args)
	case "play":
		err = cmdPlay(cfg, args)
	case "mesh":
		err = cmdMesh(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`glyphtool - glyphset keyframe utility

Usage:
  glyphtool [global options] <command> [options] <file>

Commands:
  info <glyphs.json>                         Show field metadata
  sample [-t ms] [-geometry file] [-n N] <glyphs.json>
                                             Print instance transforms at a time
  play [-frames N] [-delta s] <glyphs.json>  Step the animation and print progress
  play -for 5s [-fps N] <glyphs.json>        Play in real time
  play -watch <glyphs.json>                  Play in real time, reload on change
  mesh [-t ms] <geometry.json>               Show a morphing mesh at a time

Global options:
  -config file      Config file (YAML or TOML)
  -debug            Enable debug logging
  -duration ms      Default object duration
  -play-rate r      Animation time units per second
  -no-instancing    One object per glyph instead of an instanced store
  -log-file file    Also write logs to a rotating file

Examples:
  glyphtool info arrows.json
  glyphtool sample -t 1500 -geometry arrow.json arrows.json
  glyphtool -play-rate 1000 play -frames 10 -delta 0.1 arrows.json`)
}
