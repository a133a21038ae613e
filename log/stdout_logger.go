package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger is the standard output logger for printing all logs into the commandline.
type StdoutLogger struct {
	// MinLevel is the lowest level which will be printed, the zero value prints everything.
	MinLevel Level

	// Writer is where log lines are written, defaults to 'os.Stdout'.
	Writer io.Writer

	// now allows tests to fix the timestamp of log lines.
	now func() time.Time
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	if level < s.MinLevel {
		return
	}

	var (
		writer = s.Writer
		now    = s.now
	)

	if writer == nil {
		writer = os.Stdout
	}

	if now == nil {
		now = time.Now
	}

	fmt.Fprintln(writer, now().UTC().Format(time.RFC3339Nano)+" "+level.String()+": "+fmt.Sprintf(msg, args...))
}
