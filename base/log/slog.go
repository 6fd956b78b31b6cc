package log

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const timeFormat = "060102 15:04:05.000"

func setupSLog(level Severity, w io.Writer) {
	handlerLogLevel := level.toSLogLevel()
	useColor := isTerminal(w)

	// Windows consoles need ANSI translation.
	if useColor && runtime.GOOS == "windows" {
		if f, ok := w.(*os.File); ok {
			w = colorable.NewColorable(f)
		}
	}

	logHandler := tint.NewHandler(w, &tint.Options{
		AddSource:   level <= DebugLevel,
		Level:       handlerLogLevel,
		TimeFormat:  timeFormat,
		NoColor:     !useColor,
		ReplaceAttr: replaceLevelNames,
	})

	// Set as default logger.
	slog.SetDefault(slog.New(logHandler))
	slog.SetLogLoggerLevel(handlerLogLevel)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// replaceLevelNames prints trace and critical instead of DBG-4 and ERR+4.
func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case TraceLevel.toSLogLevel():
		return slog.String(slog.LevelKey, "TRC")
	case CriticalLevel.toSLogLevel():
		return slog.String(slog.LevelKey, "CRT")
	}
	return a
}
