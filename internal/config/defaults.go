package config

const (
	defaultTargetDir      = "~/Downloads"
	defaultLogDir         = "~/.local/share/downsort/logs"
	defaultDataDir        = "~/.local/share/downsort"
	defaultOldAfterDays   = 30
	defaultOldFilesPolicy = "flatten"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			TargetDir: defaultTargetDir,
			LogDir:    defaultLogDir,
			DataDir:   defaultDataDir,
		},
		Rules: Rules{
			OldAfterDays:   defaultOldAfterDays,
			OldFilesPolicy: defaultOldFilesPolicy,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
