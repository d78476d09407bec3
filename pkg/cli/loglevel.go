package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevelEnv names the environment variable that supplies the default
// --log-level.
const LogLevelEnv = "MXA_LOG_LEVEL"

// ParseLogLevel maps a user supplied level name to a zerolog level.
// Valid levels: "debug", "info", "warn", "error", "disabled"
func ParseLogLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "none", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: must be one of: debug, info, warn, error, disabled", level)
	}
}

func defaultLogLevel() string {
	if v := os.Getenv(LogLevelEnv); v != "" {
		return v
	}
	return "info"
}

// newLogger writes human readable events to w.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
