package sim

import (
	"errors"
	"testing"
)

func TestParseDirection_CaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"LEFT", Left},
		{"left", Left},
		{"LeFt", Left},
		{"RIGHT", Right},
		{"right", Right},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDirection_Invalid(t *testing.T) {
	for _, in := range []string{"", "UP", "L", "lefty"} {
		if _, err := ParseDirection(in); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q): expected ErrInvalidDirection, got %v", in, err)
		}
	}
}

func TestDirection_StringAndReverse(t *testing.T) {
	if Left.String() != "LEFT" || Right.String() != "RIGHT" {
		t.Errorf("unexpected names %s/%s", Left, Right)
	}
	if Left.Reverse() != Right || Right.Reverse() != Left {
		t.Error("Reverse must swap LEFT and RIGHT")
	}
}

func TestHeadState_Validate(t *testing.T) {
	for _, pos := range []int{0, 53, 299} {
		if err := (HeadState{Position: pos}).Validate(); err != nil {
			t.Errorf("position %d: unexpected error %v", pos, err)
		}
	}
	for _, pos := range []int{-1, 300} {
		if err := (HeadState{Position: pos}).Validate(); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("position %d: expected ErrPositionOutOfRange, got %v", pos, err)
		}
	}
}
