// Package telemetry records BCH decode outcomes to a CSV log, one row
// per codeword processed, for later analysis of channel error rates.
package telemetry

/*------------------------------------------------------------------
 *
 * Purpose:	Save BCH decode results to a log file.
 *
 * Description:	Rather than scattering ad hoc fmt.Printf calls through
 *		the decode path, write one CSV row per codeword so the
 *		results can be loaded into a spreadsheet or dataframe for
 *		later analysis.
 *
 *		Two alternatives, same as the teacher's log file handling:
 *
 *		- a single named file, appended to forever, or
 *		- a directory in which a new file is opened for each
 *		  UTC day (g_daily_names in the original).
 *
 *		Use one or the other but not both.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// dailyNamePattern mirrors the teacher's fixed "2006-01-02.log" layout,
// expressed as an strftime pattern for strftime.Format. The per-row
// isotime column is formatted separately with time.Time.Format.
const dailyNamePattern = "%Y-%m-%d.log"

const header = "utime,isotime,word,codeword,errors,corrected,outcome\n"

// Logger appends one CSV row per DecodeReport. A zero Logger is valid
// and silently discards every report; call Open or OpenDaily to start
// actually writing.
type Logger struct {
	dailyNames bool
	dir        string
	path       string
	fp         *os.File
	openName   string
}

// Open configures the logger to append every report to a single named
// file, creating it (and a CSV header, if the file is new) on first
// write.
func Open(path string) (*Logger, error) {
	return &Logger{path: path}, nil
}

// OpenDaily configures the logger to create a new file named for the
// current UTC date inside dir each time the date rolls over. dir must
// already exist or be creatable with the default permissions.
func OpenDaily(dir string) (*Logger, error) {
	var stat, statErr = os.Stat(dir)
	switch {
	case statErr == nil && stat.IsDir():
		// Already exists.
	case statErr == nil:
		return nil, fmt.Errorf("telemetry: %q exists and is not a directory", dir)
	default:
		if err := os.Mkdir(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating log directory %q: %w", dir, err)
		}
	}

	return &Logger{dailyNames: true, dir: dir}, nil
}

// DecodeReport is a single decode outcome, ready to serialize.
type DecodeReport struct {
	// Word is the transmitted 16-bit data word, if known (test and
	// simulation contexts); zero in a live decode where it is exactly
	// what is being recovered.
	Word uint16
	// Codeword is the 64-bit value presented to Decode.
	Codeword uint64
	// Errors is the corrected bit-error count on success.
	Errors int
	// Corrected is the recovered 16-bit data word on success.
	Corrected uint16
	// Outcome is "ok" or "uncorrectable".
	Outcome string
}

// Write appends one row for r. A zero Logger is a no-op.
func (l *Logger) Write(r DecodeReport) error {
	if l == nil || (l.path == "" && l.dir == "") {
		return nil
	}

	var now = time.Now().UTC()

	if err := l.ensureOpen(now); err != nil {
		return err
	}
	if l.fp == nil {
		return nil
	}

	var w = csv.NewWriter(l.fp)
	defer w.Flush()

	return w.Write([]string{
		strconv.FormatInt(now.Unix(), 10),
		now.Format(time.RFC3339),
		strconv.Itoa(int(r.Word)),
		strconv.FormatUint(r.Codeword, 16),
		strconv.Itoa(r.Errors),
		strconv.Itoa(int(r.Corrected)),
		r.Outcome,
	})
}

func (l *Logger) ensureOpen(now time.Time) error {
	if l.dailyNames {
		var name, err = strftime.Format(dailyNamePattern, now)
		if err != nil {
			return fmt.Errorf("telemetry: formatting daily log name: %w", err)
		}
		if l.fp != nil && name != l.openName {
			l.closeLocked()
		}
		if l.fp == nil {
			var full = filepath.Join(l.dir, name)
			return l.openLocked(full, name)
		}
		return nil
	}

	if l.fp == nil {
		return l.openLocked(l.path, "")
	}
	return nil
}

func (l *Logger) openLocked(full, name string) error {
	var _, statErr = os.Stat(full)
	var alreadyThere = statErr == nil

	var f, err = os.OpenFile(full, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("telemetry: opening log file %q: %w", full, err)
	}

	l.fp = f
	l.openName = name

	if !alreadyThere {
		if _, err := l.fp.WriteString(header); err != nil {
			return fmt.Errorf("telemetry: writing header to %q: %w", full, err)
		}
	}
	return nil
}

// Close closes any currently open log file. Safe to call on a zero
// Logger or a Logger with nothing open.
func (l *Logger) Close() error {
	if l == nil || l.fp == nil {
		return nil
	}
	var err = l.fp.Close()
	l.fp = nil
	l.openName = ""
	return err
}

func (l *Logger) closeLocked() {
	if l.fp != nil {
		l.fp.Close()
		l.fp = nil
		l.openName = ""
	}
}
