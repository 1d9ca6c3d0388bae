package timeutil

import "math"

// maxWholeHours is 2^64 as a float64; whole-hour values at or above it do not
// fit the raw uint64 passed to normalization.
const maxWholeHours float64 = 1 << 64

// Converter converts between notations with a configurable overflow policy.
// The zero value uses OverflowReset and is safe for concurrent use.
type Converter struct {
	Overflow OverflowPolicy
}

var defaultConverter Converter

// Result is the outcome of an auto-detected conversion.
type Result struct {
	// Input is the text that was converted.
	Input string
	// Notation is the detected input notation.
	Notation Notation
	// Value is the parsed, normalized duration.
	Value TimeValue
	// Output is the value rendered in the other notation.
	Output string
}

// Normalize folds excess seconds and minutes upward, applying c.Overflow when
// the hours do not fit.
func (c Converter) Normalize(hours, minutes, seconds uint64) TimeValue {
	return c.Overflow.normalize(hours, minutes, seconds)
}

// FromClock parses H:MM:SS or MM:SS.
func (c Converter) FromClock(text string) (TimeValue, error) {
	h, m, s, err := parseClock(text)
	if err != nil {
		return TimeValue{}, err
	}
	return c.Normalize(h, m, s), nil
}

// FromDecimalText parses fractional hours such as "1.055", "1,5", "1." or ".25".
func (c Converter) FromDecimalText(text string) (TimeValue, error) {
	v, err := parseDecimal(text)
	if err != nil {
		return TimeValue{}, err
	}
	return c.FromDecimal(v)
}

// FromDecimal converts fractional hours. Minutes and seconds are taken from
// the residual fraction in turn, each rounded to the nearest integer.
func (c Converter) FromDecimal(hours float64) (TimeValue, error) {
	if math.IsNaN(hours) || hours < 0 {
		return TimeValue{}, parseErr(FormatDecimal(hours), "duration must be a non-negative number")
	}

	whole := math.Floor(hours)
	frac := hours - whole
	if math.IsInf(hours, 1) {
		frac = 0
	}

	rawHours := uint64(math.MaxUint64)
	if whole < maxWholeHours {
		rawHours = uint64(whole)
	}

	minutes := math.Round(frac * 60)
	rest := frac*60 - minutes
	if rest < 0 {
		// Rounded up; keep the remainder positive and let seconds carry instead.
		minutes--
		rest++
	}
	seconds := math.Round(rest * 60)

	return c.Normalize(rawHours, uint64(minutes), uint64(seconds)), nil
}

// FromText detects the notation of text and parses it.
func (c Converter) FromText(text string) (TimeValue, error) {
	res, err := c.parse(text)
	return res.Value, err
}

// TimeToDecimal converts clock notation to decimal hours with four places.
func (c Converter) TimeToDecimal(text string) (string, error) {
	t, err := c.FromClock(text)
	if err != nil {
		return "", err
	}
	return FormatDecimal(t.ToDecimal()), nil
}

// DecimalToTime converts decimal hours to H:MM:SS.
func (c Converter) DecimalToTime(text string) (string, error) {
	t, err := c.FromDecimalText(text)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Convert detects the notation of text and renders it in the other one.
func (c Converter) Convert(text string) (Result, error) {
	res, err := c.parse(text)
	if err != nil {
		return Result{}, err
	}
	switch res.Notation {
	case NotationClock:
		res.Output = FormatDecimal(res.Value.ToDecimal())
	case NotationDecimal:
		res.Output = res.Value.String()
	}
	return res, nil
}

func (c Converter) parse(text string) (Result, error) {
	notation, err := Detect(text)
	if err != nil {
		return Result{}, err
	}

	var t TimeValue
	switch notation {
	case NotationClock:
		t, err = c.FromClock(text)
	case NotationDecimal:
		t, err = c.FromDecimalText(text)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Input: text, Notation: notation, Value: t}, nil
}

// FromText detects the notation of text and parses it with the reset policy.
func FromText(text string) (TimeValue, error) {
	return defaultConverter.FromText(text)
}

// FromDecimal converts fractional hours with the reset policy.
func FromDecimal(hours float64) (TimeValue, error) {
	return defaultConverter.FromDecimal(hours)
}

// ConvertTimeToDecimal converts H:MM:SS or MM:SS to decimal hours, e.g.
// "1:15:00" to "1.2500".
func ConvertTimeToDecimal(text string) (string, error) {
	return defaultConverter.TimeToDecimal(text)
}

// ConvertDecimalToTime converts decimal hours to H:MM:SS, e.g. "1.055" to
// "1:03:18".
func ConvertDecimalToTime(text string) (string, error) {
	return defaultConverter.DecimalToTime(text)
}

// Convert detects the notation of text and converts it with the reset policy.
func Convert(text string) (Result, error) {
	return defaultConverter.Convert(text)
}
