package patcher

import (
	"fmt"
	"strconv"
	"strings"
)

// IntToken formats an integer value as a routing token.
func IntToken(value int) string {
	return strconv.Itoa(value)
}

// FloatToken formats a float value as a routing token. Floats are
// rendered with six fixed decimals, so 1.0 becomes "1.000000" and
// never equals the integer token "1". Routing compares these strings
// literally.
func FloatToken(value float32) string {
	return fmt.Sprintf("%f", value)
}

// FirstToken returns the part of a list payload up to the first space.
// Routing matches on this token only, the payload is forwarded whole.
func FirstToken(payload string) string {
	if i := strings.Index(payload, " "); i >= 0 {
		return payload[:i]
	}
	return payload
}
