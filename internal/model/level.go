package model

import (
	"fmt"
	"strings"
)

// Level is a log severity. The canonical form is uppercase.
type Level string

const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// LevelAll is the query sentinel meaning "no level restriction".
// It is never stored on a record.
const LevelAll = "ALL"

var levels = []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}

// Levels returns the five valid levels in severity order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ParseLevel normalizes s to the canonical uppercase level.
// Input casing is not significant.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range levels {
		if l == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid log level %q", s)
}

func (l Level) String() string { return string(l) }
