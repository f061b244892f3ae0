package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDuration   = flag.Float64("duration", 0, "Default object duration (ms)")
	flagPlayRate   = flag.Float64("play-rate", 0, "Animation time units per second")
	flagNoInstance = flag.Bool("no-instancing", false, "Use one object per glyph")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDuration > 0 {
		cfg.Scene.Duration = *flagDuration
	}
	if *flagPlayRate > 0 {
		cfg.Scene.PlayRate = *flagPlayRate
	}
	if *flagNoInstance {
		cfg.Scene.Instancing = false
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
