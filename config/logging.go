package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type LoggingConfigType string

const (
	LoggingConfigTypeTint LoggingConfigType = "tint"
	LoggingConfigTypeJson LoggingConfigType = "json"
	LoggingConfigTypeNone LoggingConfigType = "none"
)

type LoggingConfigOutput string

const (
	LoggingConfigOutputStdout LoggingConfigOutput = "stdout"
	LoggingConfigOutputStderr LoggingConfigOutput = "stderr"
)

func (o LoggingConfigOutput) Output() io.Writer {
	if o == LoggingConfigOutputStdout {
		return os.Stdout
	}

	return os.Stderr
}

type LoggingConfigLevel string

const (
	LoggingConfigLevelDebug LoggingConfigLevel = "debug"
	LoggingConfigLevelInfo  LoggingConfigLevel = "info"
	LoggingConfigLevelWarn  LoggingConfigLevel = "warn"
	LoggingConfigLevelError LoggingConfigLevel = "error"
)

func (l LoggingConfigLevel) Level() slog.Level {
	switch l {
	case LoggingConfigLevelDebug:
		return slog.LevelDebug
	case LoggingConfigLevelWarn:
		return slog.LevelWarn
	case LoggingConfigLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type LoggingConfig interface {
	GetType() LoggingConfigType
	GetRootLogger() *slog.Logger
}

// LoggingRoot wraps the polymorphic logging config so the concrete handler
// type can be chosen from the yaml "type" field. Defaults to tint when no
// logging section is present.
type LoggingRoot struct {
	LoggingConfig
}

func (r *LoggingRoot) UnmarshalYAML(node *yaml.Node) error {
	var discriminator struct {
		Type LoggingConfigType `yaml:"type"`
	}
	if err := node.Decode(&discriminator); err != nil {
		return err
	}

	switch discriminator.Type {
	case LoggingConfigTypeTint, "":
		cfg := &LoggingConfigTint{}
		if err := node.Decode(cfg); err != nil {
			return err
		}
		r.LoggingConfig = cfg
	case LoggingConfigTypeJson:
		cfg := &LoggingConfigJson{}
		if err := node.Decode(cfg); err != nil {
			return err
		}
		r.LoggingConfig = cfg
	case LoggingConfigTypeNone:
		r.LoggingConfig = &LoggingConfigNone{}
	default:
		return fmt.Errorf("unknown logging type '%s'", discriminator.Type)
	}

	return nil
}

// GetRootLogger returns the configured logger, falling back to tint with
// defaults when no logging section was configured.
func (r *LoggingRoot) GetRootLogger() *slog.Logger {
	if r.LoggingConfig == nil {
		r.LoggingConfig = &LoggingConfigTint{}
	}

	return r.LoggingConfig.GetRootLogger()
}
