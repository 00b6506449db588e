package initialize

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"pokedex-api/backend/config"
)

// NewLogger builds the process logger: console output to stdout by default,
// JSON when log.format is "json", appended to log.path when set. The returned
// closer releases the log file, if any.
func NewLogger(cfg config.Log) (zerolog.Logger, io.Closer, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if cfg.Path != "" {
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		w, closer = file, file
	}
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.Path != ""}
	}
	SetLevel(cfg.Level)
	return zerolog.New(w).With().Timestamp().Logger(), closer, nil
}

// SetLevel changes the process-wide minimum level. Unknown values mean info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
