// Package logparse implements the lightweight per-line field parser for the
// assumed log shape:
//
//	<date> <time> [<LEVEL>] <address> <message>
//
// e.g. "2025-10-08 08:32:15,124 [INFO] 192.168.1.10 User 'admin' logged in".
// The parser is deliberately positional: it splits on spaces and strips the
// level brackets. It never fails hard — a line that does not fit the shape
// simply yields ok == false.
package logparse

import (
	"strings"
	"time"
)

// Fields holds the raw fields extracted from one log line. Values are
// unvalidated strings; Timestamp and Level still need ParseTimestamp and
// NormalizeLevel respectively.
type Fields struct {
	Timestamp string
	Level     string
	Source    string
	Message   string
}

// Recognized severity levels after normalization.
const (
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// Timestamp layouts accepted by ParseTimestamp; the fractional-second part
// is optional in the input.
var timestampLayouts = []string{
	"2006-01-02 15:04:05,000",
	"2006-01-02 15:04:05",
}

// ParseLine splits a line into its fields. ok is false when the line does not
// have at least "<date> <time> [<LEVEL>] <rest>".
func ParseLine(line string) (f Fields, ok bool) {
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 4 {
		return Fields{}, false
	}

	f.Timestamp = parts[0] + " " + parts[1]
	f.Level = strings.Trim(strings.TrimSpace(parts[2]), "[]")

	rest := strings.TrimSpace(parts[3])
	if rest == "" {
		return Fields{}, false
	}
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		f.Source = rest[:i]
		f.Message = strings.TrimSpace(rest[i+1:])
	} else {
		f.Source = rest
	}
	return f, true
}

// NormalizeLevel maps a raw level spelling onto the fixed vocabulary
// {INFO, WARNING, ERROR}. "WARN" and "WARNING" are synonyms. ok is false for
// anything outside the vocabulary.
func NormalizeLevel(raw string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case LevelInfo:
		return LevelInfo, true
	case "WARN", LevelWarning:
		return LevelWarning, true
	case LevelError:
		return LevelError, true
	default:
		return "", false
	}
}

// ParseTimestamp parses "YYYY-MM-DD HH:MM:SS,fff" with the milliseconds
// optional.
func ParseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
