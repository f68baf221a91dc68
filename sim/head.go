package sim

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirection is returned when a direction token is neither LEFT nor RIGHT.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrPositionOutOfRange is returned for a head position outside [MinCylinder, MaxCylinder].
	ErrPositionOutOfRange = errors.New("head position out of range")
)

// Direction is the direction of head travel.
type Direction int

const (
	// Left moves the head toward lower cylinders.
	Left Direction = iota
	// Right moves the head toward higher cylinders.
	Right
)

// ParseDirection converts a LEFT/RIGHT token, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	default:
		return Left, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
	}
}

func (d Direction) String() string {
	if d == Left {
		return "LEFT"
	}
	return "RIGHT"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// HeadState is the disk arm position and travel direction at the start of a run.
// Schedulers receive it by value; each run starts from the same initial state.
type HeadState struct {
	Position  int
	Direction Direction
}

// Validate checks that the position lies on the disk.
func (h HeadState) Validate() error {
	if h.Position < MinCylinder || h.Position > MaxCylinder {
		return fmt.Errorf("%d not in [%d, %d]: %w", h.Position, MinCylinder, MaxCylinder, ErrPositionOutOfRange)
	}
	return nil
}
