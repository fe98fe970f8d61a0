package common

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/getlantern/buildenv/internal"
)

// InitLogger returns a logger writing to w and, if logPath is set, to a rotated log file at
// logPath. The returned close function releases the log file.
func InitLogger(w io.Writer, logPath, level string) (*slog.Logger, func() error, error) {
	lvl, err := internal.ParseLogLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize log: %w", err)
	}
	closeFn := func() error { return nil }
	if logPath != "" {
		lw := internal.NewLogWriter(logPath)
		w = io.MultiWriter(w, lw)
		closeFn = lw.Close
	}
	return internal.NewLogger(w, lvl), closeFn, nil
}
