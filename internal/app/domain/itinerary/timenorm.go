package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:[ \t]*([AaPp][Mm]))?$`)

// NormalizeTime canonicalizes a clock token to "H:MM AM" / "H:MM PM" with
// no leading zero on the hour. When the meridiem is missing it is inferred:
// hours 5-11 become AM, everything else becomes PM. A bare "12:00" is
// therefore treated as noon, a known heuristic for genuinely ambiguous
// input. Tokens that do not look like a clock time come back unchanged.
func NormalizeTime(raw string) string {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return raw
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return raw
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return raw
	}

	meridiem := strings.ToUpper(m[3])
	if meridiem == "" {
		if hour >= 5 && hour <= 11 {
			meridiem = "AM"
		} else {
			meridiem = "PM"
		}
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}
