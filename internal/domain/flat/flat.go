package flat

import (
	"fmt"
	"strings"
)

// Type is a housing unit category within a project.
type Type string

const (
	TwoRoom   Type = "2-Room"
	ThreeRoom Type = "3-Room"
)

// All lists every flat type in display order.
var All = []Type{TwoRoom, ThreeRoom}

func (t Type) Valid() bool { return t == TwoRoom || t == ThreeRoom }

// Parse accepts "2-Room", "2room", "2" and the 3-Room equivalents.
func Parse(s string) (Type, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "2room", "2":
		return TwoRoom, nil
	case "3room", "3":
		return ThreeRoom, nil
	}
	return "", fmt.Errorf("unknown flat type %q", s)
}
