package timeutil

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// OverflowPolicy decides what happens when the carried hour count does not
// fit the 16-bit hour field.
type OverflowPolicy int

const (
	// OverflowReset replaces the whole value with 0:00:00.
	OverflowReset OverflowPolicy = iota
	// OverflowSaturate clamps hours to 65535 and keeps minutes and seconds.
	OverflowSaturate
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowReset:
		return "reset"
	case OverflowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy parses "reset" or "saturate" (case-insensitive).
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reset":
		return OverflowReset, nil
	case "saturate":
		return OverflowSaturate, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q (want reset or saturate)", s)
	}
}

// narrow converts v to T, reporting whether it fit.
func narrow[T constraints.Unsigned](v uint64) (T, bool) {
	t := T(v)
	return t, uint64(t) == v
}

// Normalize folds seconds into minutes and minutes into hours using the
// reset overflow policy. normalize(1, 59, 60) is 2:00:00.
func Normalize(hours, minutes, seconds uint64) TimeValue {
	return OverflowReset.normalize(hours, minutes, seconds)
}

func (p OverflowPolicy) normalize(hours, minutes, seconds uint64) TimeValue {
	// Seconds carry first, then minutes. Minutes are split before adding the
	// seconds carry so the sum cannot wrap uint64.
	minCarry, secs := seconds/60, seconds%60
	totalMins := minutes%60 + minCarry%60
	hourCarry := minutes/60 + minCarry/60 + totalMins/60
	mins := totalMins % 60

	h, carry := bits.Add64(hours, hourCarry, 0)
	if carry == 0 {
		if h16, ok := narrow[uint16](h); ok {
			return TimeValue{hours: h16, minutes: uint8(mins), seconds: uint8(secs)}
		}
	}

	if p == OverflowSaturate {
		return TimeValue{hours: math.MaxUint16, minutes: uint8(mins), seconds: uint8(secs)}
	}
	return TimeValue{}
}
