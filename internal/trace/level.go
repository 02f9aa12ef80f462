package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // point events flagged as failures only
	LevelPhase               // commands and engine operations
	LevelDetail              // plus per-document work
	LevelDebug               // everything including single lines
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit reports whether spans of the given scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopeEngine
	case LevelDetail:
		return scope <= ScopeDocument
	case LevelDebug:
		return true
	default:
		return false
	}
}

// accepts is the admission rule shared by the concrete tracers.
// Error points pass at every enabled level.
func (l Level) accepts(ev *Event) bool {
	if l == LevelOff {
		return false
	}
	if ev.Kind == KindPoint && ev.Extra[ExtraError] != "" {
		return true
	}
	return l.ShouldEmit(ev.Scope)
}
