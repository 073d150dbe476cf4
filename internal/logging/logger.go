package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

/*

Builder for the app's zerolog logger. The TUI owns stdout, so the app logs to a file; tests log to a
buffer. Without either, logs are discarded.

*/

const permission = 0664

type LogBuild struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

type LogData struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{level: zerolog.InfoLevel}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) WithLevel(l zerolog.Level) *LogBuild {
	build.level = l
	return build
}

// Make opens the log file if one was set. A file takes precedence over a buffer.
func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	writer := build.writer
	if writer == nil {
		writer = io.Discard
	}
	if build.path != "" {
		if err = os.MkdirAll(filepath.Dir(build.path), 0755); err != nil {
			return nil, err
		}
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(logData.LogFile)
	}
	logData.Logger = zerolog.New(writer).Level(build.level).With().Timestamp().Logger()
	return
}

func (logData *LogData) Close() error {
	if logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}
