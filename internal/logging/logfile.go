package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogFile manages an optional log file destination.
type LogFile struct {
	Path   string // full path to the log file (empty if not file-backed)
	file   *os.File
	writer io.Writer
}

// NewLogFile resolves a log output spec to a writer.
//
// Output behavior:
//   - "-" or empty: os.Stderr
//   - "none": disable logging (io.Discard)
//   - path: append to the given file, creating directories as needed
func NewLogFile(output string) (*LogFile, error) {
	lf := &LogFile{}

	switch strings.ToLower(output) {
	case "", "-":
		lf.writer = os.Stderr
		return lf, nil
	case "none":
		lf.writer = io.Discard
		return lf, nil
	}

	lf.Path = output
	dir := filepath.Dir(lf.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", dir, err)
	}
	f, err := os.OpenFile(lf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", lf.Path, err)
	}
	lf.file = f
	lf.writer = f
	return lf, nil
}

// Writer returns the io.Writer for log output.
func (lf *LogFile) Writer() io.Writer {
	return lf.writer
}

// Close closes the log file if one was opened.
func (lf *LogFile) Close() error {
	if lf.file != nil {
		return lf.file.Close()
	}
	return nil
}

// GenerateLogFilename generates a timestamped log filename:
// deckops-YYYYMMDD-HHMMSS-sss.log (UTC, sss is milliseconds).
func GenerateLogFilename(t time.Time) string {
	return fmt.Sprintf("deckops-%s-%03d.log",
		t.Format("20060102-150405"),
		t.Nanosecond()/1_000_000)
}
