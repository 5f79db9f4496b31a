// Package log provides a thread-safe, structured logging infrastructure with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/incread/incread/filesystem"
	"github.com/incread/incread/key"
	"github.com/incread/incread/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logger is a dedicated instance so that configuring it never leaks into the
// global logrus logger other libraries may use.
var logger = logrus.New()

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

// Setup initializes the logging subsystem, including file handles, formatting, and severity levels based on global configuration.
// Inoperative state: If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return nil
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend when logging is enabled.

func Panic(args ...any) {
	if enabled {
		logger.Panic(args...)
	}
}
func Panicf(format string, args ...any) {
	if enabled {
		logger.Panicf(format, args...)
	}
}
func Fatal(args ...any) {
	if enabled {
		logger.Fatal(args...)
	}
}
func Fatalf(format string, args ...any) {
	if enabled {
		logger.Fatalf(format, args...)
	}
}
func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}
func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
func Trace(args ...any) {
	if enabled {
		logger.Trace(args...)
	}
}
func Tracef(format string, args ...any) {
	if enabled {
		logger.Tracef(format, args...)
	}
}
