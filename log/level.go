package log

import (
	"bytes"
	"log/slog"
)

// A Level is the importance or severity of a log event.
// It extends [slog.Level] with [LevelDisabled], which no event reaches.
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level. Levels at or above
// [LevelDisabled] are named "DISABLED"; all others are named
// as by [slog.Level.String].
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}
	return slog.Level(l).String()
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts any string produced by [Level.MarshalText], ignoring case,
// as well as "disable", "off" and "false".
func (l *Level) UnmarshalText(data []byte) error {
	switch string(bytes.ToLower(data)) {
	case "disable", "disabled", "off", "false":
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalText(data)
}

// LevelFlag implements [github.com/spf13/pflag.Value] so a Level can be set
// from the command line.
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return Level(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Type() string {
	return "level"
}

func (lf *LevelFlag) Level() Level {
	return Level(*lf)
}
