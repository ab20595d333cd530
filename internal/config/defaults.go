package config

const (
	defaultCdparanoiaBinary = "cdparanoia"
	defaultFFmpegBinary     = "ffmpeg"
	defaultMid3v2Binary     = "mid3v2"
	defaultRipTimeout       = 0
	defaultTranscodeTimeout = 600
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			Cdparanoia:       defaultCdparanoiaBinary,
			FFmpeg:           defaultFFmpegBinary,
			Mid3v2:           defaultMid3v2Binary,
			RipTimeout:       defaultRipTimeout,
			TranscodeTimeout: defaultTranscodeTimeout,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
