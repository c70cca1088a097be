package ui

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Control describes a viewer setting the HUD exposes with -/+ buttons.
// Bounds are optional.
type Control struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Tunables is implemented by whatever owns the adjustable settings.
type Tunables interface {
	Controls() []Control
	Value(key string) (float64, bool)
	Set(key string, value float64) bool
}

func (c Control) step() float64 {
	if c.Type == ParamTypeInt {
		return math.Max(1, math.Round(c.Step))
	}
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// Adjust returns value moved one step in direction, clamped to the control's
// bounds. ok is false when the value would not change.
func (c Control) Adjust(value float64, direction int) (next float64, ok bool) {
	if direction == 0 {
		return value, false
	}
	next = value + float64(direction)*c.step()
	if c.Type == ParamTypeInt {
		next = math.Round(next)
	}
	if c.HasMin && next < c.Min {
		next = c.Min
	}
	if c.HasMax && next > c.Max {
		next = c.Max
	}
	if math.Abs(next-value) < 1e-9 {
		return value, false
	}
	return next, true
}

// Format renders value with a precision suited to the control's step.
func (c Control) Format(value float64) string {
	if c.Type == ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch step := c.step(); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
