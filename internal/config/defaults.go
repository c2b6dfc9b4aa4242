package config

const (
	defaultConfigPath  = "~/.config/mpags/config.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultWorkers     = 4
	maxWorkers         = 256
	defaultHistoryPath = "~/.local/share/mpags/history.db"
	defaultHistoryKeep = 500
	envLogLevel        = "MPAGS_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Pipeline: Pipeline{
			Workers: defaultWorkers,
		},
		History: History{
			Path: defaultHistoryPath,
			Keep: defaultHistoryKeep,
		},
	}
}
