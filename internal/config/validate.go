package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.Cdparanoia == "" {
		return errors.New("tools.cdparanoia must be set")
	}
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.Mid3v2 == "" {
		return errors.New("tools.mid3v2 must be set")
	}
	if c.Tools.RipTimeout < 0 {
		return errors.New("tools.rip_timeout must be zero or positive")
	}
	if c.Tools.TranscodeTimeout < 0 {
		return errors.New("tools.transcode_timeout must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
