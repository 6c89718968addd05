package strip

import (
	"fmt"
	"strconv"

	"github.com/google/shlex"
)

// Command is one parsed control-line invocation, e.g. from a serial
// console or a wireless configuration channel (out of the core's scope;
// the demo command does not call it).
type Command struct {
	Edge      int
	Kind      Kind
	R, G, B   uint8
	Intensity uint8
	SpeedMs   uint32
}

var kindNames = map[string]Kind{
	"off":      KindOff,
	"static":   KindStatic,
	"blink":    KindBlink,
	"breath":   KindBreath,
	"rainbow":  KindRainbow,
	"fade_in":  KindFadeIn,
	"fade_out": KindFadeOut,
	"twinkle":  KindTwinkle,
}

// ParseCommand splits line shell-style (so quoted tokens and comments work
// the way a human typing at a console expects) and parses it into a
// Command of the form: "<edge> <kind> <r> <g> <b> <intensity> <speed_ms>".
func ParseCommand(line string) (Command, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("strip: parsing command: %w", err)
	}
	if len(tokens) != 7 {
		return Command{}, fmt.Errorf("strip: expected 7 fields, got %d", len(tokens))
	}

	edge, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Command{}, fmt.Errorf("strip: invalid edge %q: %w", tokens[0], err)
	}
	kind, ok := kindNames[tokens[1]]
	if !ok {
		return Command{}, fmt.Errorf("strip: unknown kind %q", tokens[1])
	}
	r, err := parseU8(tokens[2])
	if err != nil {
		return Command{}, err
	}
	g, err := parseU8(tokens[3])
	if err != nil {
		return Command{}, err
	}
	b, err := parseU8(tokens[4])
	if err != nil {
		return Command{}, err
	}
	intensity, err := parseU8(tokens[5])
	if err != nil {
		return Command{}, err
	}
	speed, err := strconv.ParseUint(tokens[6], 10, 32)
	if err != nil {
		return Command{}, fmt.Errorf("strip: invalid speed_ms %q: %w", tokens[6], err)
	}

	return Command{Edge: edge, Kind: kind, R: r, G: g, B: b, Intensity: intensity, SpeedMs: uint32(speed)}, nil
}

func parseU8(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("strip: invalid channel value %q: %w", s, err)
	}
	return uint8(v), nil
}

// Apply registers the command's pattern on ctrl.
func (cmd Command) Apply(ctrl *Controller) error {
	return ctrl.SetEdgePattern(cmd.Edge, cmd.Kind, cmd.R, cmd.G, cmd.B, cmd.Intensity, cmd.SpeedMs)
}
