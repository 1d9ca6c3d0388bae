// Package timeutil converts clock-style durations (H:MM:SS, MM:SS) to decimal
// hours and back.
package timeutil

import (
	"fmt"
	"strconv"
)

// decimalPlaces is the fixed precision of decimal-hour output.
const decimalPlaces = 4

// TimeValue is a normalized duration. Minutes and seconds are always in
// [0, 59]. Values are built by Normalize, FromText or FromDecimal and never
// change afterwards.
type TimeValue struct {
	hours   uint16
	minutes uint8
	seconds uint8
}

// Hours returns the hour component.
func (t TimeValue) Hours() uint16 { return t.hours }

// Minutes returns the minute component (0-59).
func (t TimeValue) Minutes() uint8 { return t.minutes }

// Seconds returns the second component (0-59).
func (t TimeValue) Seconds() uint8 { return t.seconds }

// ToDecimal returns the duration as fractional hours.
func (t TimeValue) ToDecimal() float64 {
	return float64(t.hours) + float64(t.minutes)/60 + float64(t.seconds)/3600
}

// String formats the duration as H:MM:SS (e.g. 0:01:30, 123:02:03).
func (t TimeValue) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.hours, t.minutes, t.seconds)
}

// FormatDecimal formats fractional hours with four decimal places (e.g. 1.2500).
func FormatDecimal(hours float64) string {
	return strconv.FormatFloat(hours, 'f', decimalPlaces, 64)
}
