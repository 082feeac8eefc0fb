// Package timecode converts between HH:MM:SS[.mmm] timestamps and seconds.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrNegativeDuration   = errors.New("negative duration")
)

// Parse converts a HH:MM:SS or HH:MM:SS.mmm timestamp to seconds.
// Exactly three colon-separated fields are required.
func Parse(ts string) (float64, error) {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrMalformedTimestamp, ts, len(parts))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: hours: %v", ErrMalformedTimestamp, ts, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: minutes: %v", ErrMalformedTimestamp, ts, err)
	}
	s, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: seconds: %v", ErrMalformedTimestamp, ts, err)
	}
	return float64(h)*3600 + float64(m)*60 + s, nil
}

// Format renders seconds as zero-padded HH:MM:SS.mmm. It is the inverse of
// Parse up to millisecond granularity.
func Format(sec float64) string {
	// Round to milliseconds first so 59.9995 carries into the next minute
	// instead of printing as 60.000.
	ms := math.Round(sec * 1000)
	h := int(ms) / 3600000
	m := (int(ms) % 3600000) / 60000
	s := float64(int(ms)%60000) / 1000
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, s)
}

// Duration returns Parse(to)-Parse(from) in seconds. Tables come from an
// untrusted collaborator, so an inverted range is reported rather than assumed
// impossible.
func Duration(from, to string) (float64, error) {
	a, err := Parse(from)
	if err != nil {
		return 0, err
	}
	b, err := Parse(to)
	if err != nil {
		return 0, err
	}
	d := b - a
	if d < 0 {
		return 0, fmt.Errorf("%w: %s -> %s", ErrNegativeDuration, from, to)
	}
	return d, nil
}
