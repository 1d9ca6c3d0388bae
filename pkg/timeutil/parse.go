package timeutil

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseGroup parses one digit run of clock notation. An empty group is 0 and a
// run too wide for uint64 saturates, leaving the overflow to normalization.
func parseGroup(input, group string) (uint64, error) {
	if group == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(group, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxUint64, nil
	}
	if err != nil {
		return 0, &InvariantError{Input: input, Err: err}
	}
	return v, nil
}

// parseClock splits clock notation into raw hours, minutes and seconds. With
// one colon the groups are minutes and seconds.
func parseClock(text string) (hours, minutes, seconds uint64, err error) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, 0, parseErr(text, "expected H:MM:SS or MM:SS")
	}

	groups := []string{m[1], m[2]}
	if strings.Count(text, ":") == 2 {
		groups = append(groups, m[3])
	} else {
		groups = append([]string{""}, groups...)
	}

	vals := make([]uint64, len(groups))
	for i, g := range groups {
		if vals[i], err = parseGroup(text, g); err != nil {
			return 0, 0, 0, err
		}
	}
	return vals[0], vals[1], vals[2], nil
}

// parseDecimal parses fractional hours, accepting ',' as the separator.
func parseDecimal(text string) (float64, error) {
	if !decimalPattern.MatchString(text) {
		return 0, parseErr(text, "expected decimal hours such as 1.25 or 1,25")
	}
	normalized := strings.Replace(text, ",", ".", 1)
	if strings.Trim(normalized, ".") == "" {
		return 0, parseErr(text, "no digits")
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if errors.Is(err, strconv.ErrRange) {
		// ParseFloat returns +Inf for values too large; overflow handling
		// happens during conversion.
		return v, nil
	}
	if err != nil {
		return 0, &InvariantError{Input: text, Err: err}
	}
	return v, nil
}
