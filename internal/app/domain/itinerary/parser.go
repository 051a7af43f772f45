package itinerary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/safarnama/safarnama/internal/app/models"
)

// The generated text is free-form, so parsing is best effort by contract:
// ParseItinerary never fails, it returns whatever structure it could
// recover. Sections the text does not contain simply stay empty.

// sectionHeaderRe marks the start of a recognized top-level section. The
// split is a lookahead split: the header stays attached to the section it
// opens. Markdown decoration around the header token is tolerated.
var sectionHeaderRe = regexp.MustCompile(`(?mi)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*[ \t]*)?(?:trip summary|daily schedule|travel tips|budget|day[ \t]+\d+)`)

var (
	summaryHeaderRe = regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*[ \t]*)?trip summary(?:\*\*)?:?[ \t]*`)
	tipsHeaderRe    = regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*[ \t]*)?travel tips(?:\*\*)?:?[ \t]*`)
	dayHeaderRe     = regexp.MustCompile(`(?i)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*[ \t]*)?day[ \t]+(\d+)(?:\*\*)?:?`)
)

// sectionRule routes one section to its extractor. Rules are evaluated
// top to bottom, first match wins, so the priority order is an explicit
// artifact instead of being implied by regex ordering.
type sectionRule struct {
	name  string
	match func(section string) bool
	apply func(section string, it *models.StructuredItinerary)
}

var sectionRules = []sectionRule{
	{
		name:  "summary",
		match: func(s string) bool { return summaryHeaderRe.MatchString(s) },
		apply: extractSummary,
	},
	{
		name:  "day",
		match: func(s string) bool { return dayHeaderRe.MatchString(s) },
		apply: extractDayPlan,
	},
	{
		name:  "tips",
		match: func(s string) bool { return tipsHeaderRe.MatchString(s) },
		apply: extractTips,
	},
	{
		name: "budget",
		match: func(s string) bool {
			header, _, _ := strings.Cut(s, "\n")
			return strings.Contains(strings.ToLower(header), "budget")
		},
		apply: extractBudget,
	},
}

// ParseItinerary converts free-form generated itinerary text into a
// structured record. Destination and duration are echoed from the caller,
// never read from the text. The function is pure and deterministic.
func ParseItinerary(rawText, destination string, durationDays int) models.StructuredItinerary {
	it := models.StructuredItinerary{
		Destination: destination,
		Duration:    durationDays,
		DailyPlans:  []models.DayPlan{},
		Tips:        []string{},
	}

	if strings.TrimSpace(rawText) == "" {
		return it
	}

	for _, section := range splitSections(rawText) {
		for _, rule := range sectionRules {
			if rule.match(section) {
				rule.apply(section, &it)
				break
			}
		}
	}

	// Final ordering is imposed here, not by the splitter. Duplicate day
	// numbers are kept as separate entries in encountered order.
	sort.SliceStable(it.DailyPlans, func(i, j int) bool {
		return it.DailyPlans[i].Day < it.DailyPlans[j].Day
	})

	return it
}

// splitSections partitions the text at recognized header positions. The
// sections concatenate back to the original input: preamble text before the
// first header becomes an un-routed leading section, and a text with no
// recognized header comes back as a single un-routed section.
func splitSections(text string) []string {
	starts := sectionHeaderRe.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return []string{text}
	}

	sections := make([]string, 0, len(starts)+1)
	if starts[0][0] > 0 {
		sections = append(sections, text[:starts[0][0]])
	}
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		sections = append(sections, text[loc[0]:end])
	}
	return sections
}

// extractSummary keeps everything after the header, verbatim apart from
// whitespace and markdown cleanup. Later sections overwrite earlier ones.
func extractSummary(section string, it *models.StructuredItinerary) {
	body := summaryHeaderRe.ReplaceAllString(section, "")
	it.Summary = sanitizeText(body)
}

// extractDayPlan parses one "Day N" section. A section in which no activity
// line is recognized produces no DayPlan at all.
func extractDayPlan(section string, it *models.StructuredItinerary) {
	m := dayHeaderRe.FindStringSubmatchIndex(section)
	if m == nil {
		return
	}

	day, err := strconv.Atoi(section[m[2]:m[3]])
	if err != nil || day <= 0 {
		return
	}

	activities := parseActivities(section[m[1]:])
	if len(activities) == 0 {
		return
	}

	it.DailyPlans = append(it.DailyPlans, models.DayPlan{
		Day:        day,
		Activities: activities,
	})
}

// extractTips collects bullet lines in order of appearance. Duplicates are
// kept on purpose.
func extractTips(section string, it *models.StructuredItinerary) {
	body := tipsHeaderRe.ReplaceAllString(section, "")
	for _, line := range strings.Split(body, "\n") {
		tip := sanitizeText(line)
		if tip == "" {
			continue
		}
		it.Tips = append(it.Tips, tip)
	}
}

// extractBudget reflows the budget section into a plain "Category: Amount"
// block: markdown heading markers go away, as does any line that itself
// starts with the word "budget" (a duplicated header).
func extractBudget(section string, it *models.StructuredItinerary) {
	var lines []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "budget") {
			continue
		}
		lines = append(lines, sanitizeText(line))
	}
	it.EstimatedBudget = strings.Join(lines, "\n")
}

// sanitizeText strips bullet markers, markdown bold/backticks and
// surrounding whitespace from extracted free text.
func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "•-* \t")
	return strings.TrimSpace(s)
}
