package leverage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction is the side of a futures position.
type Direction int

const (
	Long Direction = iota
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name, case insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "l", "buy":
		return Long, nil
	case "short", "s", "sell":
		return Short, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if d != Long && d != Short {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the direction name, or its ordinal as older files
// stored it (0 for long, 1 for short).
func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		v, err := ParseDirection(name)
		if err != nil {
			return err
		}
		*d = v
		return nil
	}
	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownDirection, string(data))
	}
	switch Direction(ordinal) {
	case Long, Short:
		*d = Direction(ordinal)
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownDirection, ordinal)
}
