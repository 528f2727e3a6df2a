package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHexColor converts a "#rrggbb" string into the packed 0xRRGGBB value
// xconn's border-color calls expect.
func parseHexColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}
