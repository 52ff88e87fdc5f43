// Package logger is the central log for the application. Log entries are
// tagged and kept in memory; an echo writer can be attached so that new
// entries are also written somewhere immediately (eg. stderr during
// development).
package logger

import (
	"fmt"
	"io"
	"strings"
)

// Permission indicates whether the caller is allowed to write to the log. It
// is implemented by context types that want to suppress logging in some
// situations (eg. during a rewind or a preview emulation)
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow can be used in place of a context for callers that always want to log
var Allow Permission = allow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	entries []entry
	echo    io.Writer
}

var log = &central{}

// maximum number of entries to keep. the oldest half of the log is discarded
// when the maximum is reached
const maxEntries = 256

func (l *central) add(tag string, detail string) {
	// split multi-line details into separate entries so that the echo writer
	// and Tail() never have to deal with embedded newlines
	for _, d := range strings.Split(detail, "\n") {
		if d == "" {
			continue
		}
		e := entry{tag: tag, detail: d}
		l.entries = append(l.entries, e)
		if l.echo != nil {
			fmt.Fprintf(l.echo, "%s\n", e.String())
		}
	}

	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries/2:]
	}
}

// Log adds an entry to the central log. The detail can be a string, an error
// or anything with a String() function
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	log.add(tag, s)
}

// Logf adds a formatted entry to the central log
func Logf(perm Permission, tag string, format string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	log.add(tag, fmt.Sprintf(format, args...))
}

// SetEcho to an io.Writer. New log entries will be written to the echo writer
// as they arrive. If replay is true then the existing contents of the log are
// written to the writer immediately. A writer of nil turns echoing off
func SetEcho(output io.Writer, replay bool) {
	log.echo = output
	if log.echo != nil && replay {
		for _, e := range log.entries {
			fmt.Fprintf(log.echo, "%s\n", e.String())
		}
	}
}

// Tail writes the last number of entries to the io.Writer. A number of less
// than zero writes the entire log
func Tail(output io.Writer, number int) {
	if output == nil {
		return
	}

	var t []entry
	if number < 0 || number > len(log.entries) {
		t = log.entries
	} else {
		t = log.entries[len(log.entries)-number:]
	}

	for _, e := range t {
		fmt.Fprintf(output, "%s\n", e.String())
	}
}
