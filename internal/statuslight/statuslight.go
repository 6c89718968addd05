// Package statuslight completes the teacher's stubbed out logger package:
// structured, leveled text logging plus an optional single-pixel status
// light that mirrors the current severity as a color. Kept portable (no
// machine/tinygo import) by taking a Light interface instead of a
// concrete NeoPixel driver.
package statuslight

import (
	"fmt"
	"time"
)

// Level is a log severity, ordered least to most severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Light is a single-pixel indicator; SetColor pushes r,g,b immediately.
// An output.Driver such as driver.Fake can serve as one through
// SinglePixelLight.
type Light interface {
	SetColor(r, g, b uint8)
}

// Sink receives formatted log lines. Tests can supply a slice-backed Sink;
// the demo command wires this to a plain Println sink.
type Sink func(line string)

// Logger is a leveled logger that also drives an optional status Light by
// severity color: debug=off, info=dim green, warn=amber, error=red.
type Logger struct {
	minLevel Level
	sink     Sink
	light    Light
	now      func() time.Time
}

// New returns a Logger that writes lines at or above minLevel to sink. A
// nil light disables the status-light side effect.
func New(minLevel Level, sink Sink, light Light) *Logger {
	return &Logger{minLevel: minLevel, sink: sink, light: light, now: time.Now}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.minLevel {
		return
	}
	if l.sink != nil {
		line := fmt.Sprintf("[%s] %s %s", level, l.now().Format(time.RFC3339), fmt.Sprintf(format, args...))
		l.sink(line)
	}
	if l.light != nil {
		l.light.SetColor(levelColor(level))
	}
}

func levelColor(level Level) (r, g, b uint8) {
	switch level {
	case LevelDebug:
		return 0, 0, 0
	case LevelInfo:
		return 0, 40, 0
	case LevelWarn:
		return 200, 120, 0
	case LevelError:
		return 200, 0, 0
	default:
		return 0, 0, 0
	}
}

// pixelDriver is the subset of output.Driver a single-pixel status light
// needs. Declared locally to avoid statuslight depending on the output
// package.
type pixelDriver interface {
	SetPixel(index int, r, g, b uint8)
	Refresh() error
}

// SinglePixelLight adapts any pixelDriver (e.g. driver.Fake, driver.WS2812)
// into a Light by always writing to pixel 0 and refreshing immediately.
type SinglePixelLight struct {
	driver pixelDriver
}

// NewSinglePixelLight wraps driver as a Light.
func NewSinglePixelLight(driver pixelDriver) *SinglePixelLight {
	return &SinglePixelLight{driver: driver}
}

// SetColor implements Light.
func (s *SinglePixelLight) SetColor(r, g, b uint8) {
	s.driver.SetPixel(0, r, g, b)
	s.driver.Refresh()
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, format, args...) }
