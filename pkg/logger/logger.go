package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init installs the JSON logger; development mode logs at debug level
func Init(env string) {
	InitWithWriter(os.Stdout, env)
}

// InitWithWriter is Init with an explicit destination, used by tests and the CLI
func InitWithWriter(w io.Writer, env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
