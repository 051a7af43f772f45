package itinerary

import (
	"regexp"
	"strings"

	"github.com/safarnama/safarnama/internal/app/models"
)

// timeTokenRe matches a clock time H:MM or HH:MM with an optional meridiem.
// It drives both the lookahead split into activity fragments and the
// extraction of the time token inside each fragment. The meridiem must end
// at a word boundary so a bare time followed by a word like "Amber" does
// not swallow its first two letters.
var timeTokenRe = regexp.MustCompile(`\d{1,2}:\d{2}(?:[ \t]*[AaPp][Mm]\b)?`)

// leadingSeparatorRe strips the punctuation that typically follows a time
// token ("9:00 AM - Breakfast", "9:00: Breakfast", "9:00 • Breakfast").
var leadingSeparatorRe = regexp.MustCompile(`^[ \t:–—\-•*]+`)

// locationPattern is one entry of the fixed-priority location extraction
// list. removeFull controls whether the whole match (marker included) or
// only the captured location text is cut out of the description.
type locationPattern struct {
	re         *regexp.Regexp
	removeFull bool
}

// Priority order: pin emoji, parentheses, "at ", "in ". First match wins.
// The pin marker and the parentheses are delimiters and leave with the
// span; the "at "/"in " words stay in the description. Captures stop at a
// period or end of line so a fragment spanning several lines cannot pull
// the following lines into the location.
var locationPatterns = []locationPattern{
	{re: regexp.MustCompile(`📍[ \t]*([^.\n]+)`), removeFull: true},
	{re: regexp.MustCompile(`\(([^)]+)\)`), removeFull: true},
	{re: regexp.MustCompile(`\bat ([^.\n]+)`), removeFull: false},
	{re: regexp.MustCompile(`\bin ([^.\n]+)`), removeFull: false},
}

// parseActivities segments a day-section body into activity entries. Each
// fragment starts at a time token; text before the first token is dropped,
// and a body without any token yields no activities at all.
func parseActivities(body string) []models.Activity {
	starts := timeTokenRe.FindAllStringIndex(body, -1)
	if len(starts) == 0 {
		return nil
	}

	activities := make([]models.Activity, 0, len(starts))
	for i, loc := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		if a, ok := parseActivityFragment(body[loc[0]:end]); ok {
			activities = append(activities, a)
		}
	}
	return activities
}

// parseActivityFragment extracts time, description and location from one
// fragment. Fragments whose description is empty after stripping are
// discarded rather than emitted with an empty activity field.
func parseActivityFragment(fragment string) (models.Activity, bool) {
	m := timeTokenRe.FindStringIndex(fragment)
	if m == nil {
		return models.Activity{}, false
	}

	rawTime := fragment[m[0]:m[1]]
	desc := leadingSeparatorRe.ReplaceAllString(fragment[m[1]:], "")

	var location string
	for _, p := range locationPatterns {
		idx := p.re.FindStringSubmatchIndex(desc)
		if idx == nil {
			continue
		}
		location = strings.TrimSpace(desc[idx[2]:idx[3]])
		if p.removeFull {
			desc = desc[:idx[0]] + desc[idx[1]:]
		} else {
			desc = desc[:idx[2]] + desc[idx[3]:]
		}
		break
	}

	desc = sanitizeText(collapseWhitespace(desc))
	if desc == "" {
		return models.Activity{}, false
	}

	return models.Activity{
		Time:     NormalizeTime(rawTime),
		Activity: desc,
		Location: location,
	}, true
}

var whitespaceRe = regexp.MustCompile(`[ \t]+`)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return whitespaceRe.ReplaceAllString(s, " ")
}
