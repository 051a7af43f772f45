package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `Trip Summary: A relaxed three day introduction to Jaipur,
covering the old city and the forts.

Day 1
9:00 AM - Breakfast (Hotel Pearl Palace)
11:30 AM - Visit Hawa Mahal 📍Jaipur old city. Carry water.
7:00 PM - Dinner at Chokhi Dhani.

Day 2
10:00 - Amber Fort elephant courtyard
2:30pm - Shopping for block prints

Travel Tips:
• Wear comfortable shoes
- Carry small change for auto rickshaws

Budget
Accommodation: ₹2,000 per night
Food: ₹800 per day
Transport: ₹500 per day`

func TestParseItinerary_FullResponse(t *testing.T) {
	it := ParseItinerary(sampleResponse, "Jaipur", 3)

	assert.Equal(t, "Jaipur", it.Destination)
	assert.Equal(t, 3, it.Duration)
	assert.Contains(t, it.Summary, "relaxed three day introduction")

	require.Len(t, it.DailyPlans, 2)
	assert.Equal(t, 1, it.DailyPlans[0].Day)
	assert.Equal(t, 2, it.DailyPlans[1].Day)

	day1 := it.DailyPlans[0].Activities
	require.Len(t, day1, 3)
	assert.Equal(t, "9:00 AM", day1[0].Time)
	assert.Equal(t, "Hotel Pearl Palace", day1[0].Location)
	assert.Equal(t, "Breakfast", day1[0].Activity)
	assert.Equal(t, "11:30 AM", day1[1].Time)
	assert.Equal(t, "Jaipur old city", day1[1].Location)
	assert.Equal(t, "7:00 PM", day1[2].Time)
	assert.Equal(t, "Chokhi Dhani", day1[2].Location)

	day2 := it.DailyPlans[1].Activities
	require.Len(t, day2, 2)
	assert.Equal(t, "10:00 AM", day2[0].Time)
	assert.Equal(t, "2:30 PM", day2[1].Time)

	assert.Equal(t, []string{
		"Wear comfortable shoes",
		"Carry small change for auto rickshaws",
	}, it.Tips)

	assert.Equal(t, "Accommodation: ₹2,000 per night\nFood: ₹800 per day\nTransport: ₹500 per day", it.EstimatedBudget)
}

func TestParseItinerary_Deterministic(t *testing.T) {
	first := ParseItinerary(sampleResponse, "Jaipur", 3)
	second := ParseItinerary(sampleResponse, "Jaipur", 3)
	assert.Equal(t, first, second)
}

func TestParseItinerary_EmptyInput(t *testing.T) {
	it := ParseItinerary("", "Goa", 2)

	assert.Equal(t, "Goa", it.Destination)
	assert.Equal(t, 2, it.Duration)
	assert.Empty(t, it.Summary)
	assert.Empty(t, it.DailyPlans)
	assert.Empty(t, it.Tips)
	assert.Empty(t, it.EstimatedBudget)
}

func TestParseItinerary_NoRecognizedHeaders(t *testing.T) {
	it := ParseItinerary("a blob of prose with no structure at all", "Kerala", 4)

	assert.Equal(t, "Kerala", it.Destination)
	assert.Equal(t, 4, it.Duration)
	assert.Empty(t, it.Summary)
	assert.Empty(t, it.DailyPlans)
	assert.Empty(t, it.Tips)
}

func TestParseItinerary_DaysReSorted(t *testing.T) {
	text := "Day 3\n9:00 AM - Third\nDay 1\n9:00 AM - First\nDay 2\n9:00 AM - Second\n"
	it := ParseItinerary(text, "Delhi", 3)

	require.Len(t, it.DailyPlans, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{it.DailyPlans[0].Day, it.DailyPlans[1].Day, it.DailyPlans[2].Day})
	assert.Equal(t, "First", it.DailyPlans[0].Activities[0].Activity)
	assert.Equal(t, "Second", it.DailyPlans[1].Activities[0].Activity)
	assert.Equal(t, "Third", it.DailyPlans[2].Activities[0].Activity)
}

func TestParseItinerary_DuplicateDayHeadersKeptSeparate(t *testing.T) {
	text := "Day 2\n9:00 AM - Morning market\nDay 2\n3:00 PM - Afternoon fort\n"
	it := ParseItinerary(text, "Udaipur", 2)

	require.Len(t, it.DailyPlans, 2)
	assert.Equal(t, 2, it.DailyPlans[0].Day)
	assert.Equal(t, 2, it.DailyPlans[1].Day)
	assert.Equal(t, "Morning market", it.DailyPlans[0].Activities[0].Activity)
	assert.Equal(t, "Afternoon fort", it.DailyPlans[1].Activities[0].Activity)
}

func TestParseItinerary_DayWithoutActivitiesOmitted(t *testing.T) {
	text := "Day 1\nA free day with nothing scheduled, wander as you like.\n"
	it := ParseItinerary(text, "Rishikesh", 1)

	assert.Empty(t, it.DailyPlans)
}

func TestParseItinerary_LastSummaryWins(t *testing.T) {
	text := "Trip Summary: first version\nDay 1\n9:00 AM - Walk\nTrip Summary: second version\n"
	it := ParseItinerary(text, "Agra", 1)

	assert.Equal(t, "second version", it.Summary)
}

func TestParseItinerary_TipsBulletStyles(t *testing.T) {
	text := "Travel Tips:\n• Wear shoes\n- Carry water\n\n"
	it := ParseItinerary(text, "Delhi", 1)

	assert.Equal(t, []string{"Wear shoes", "Carry water"}, it.Tips)
}

func TestParseItinerary_TipsDuplicatesKept(t *testing.T) {
	text := "Travel Tips\n- Stay hydrated\n- Stay hydrated\n"
	it := ParseItinerary(text, "Jaisalmer", 1)

	assert.Equal(t, []string{"Stay hydrated", "Stay hydrated"}, it.Tips)
}

func TestParseItinerary_BudgetHeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain header",
			text: "Budget\nHotel: ₹1500\nFood: ₹600\n",
			want: "Hotel: ₹1500\nFood: ₹600",
		},
		{
			name: "markdown header with suffix",
			text: "## Budget Breakdown\nHotel: ₹1500\n\nFood: ₹600\n",
			want: "Hotel: ₹1500\nFood: ₹600",
		},
		{
			name: "duplicated header line dropped",
			text: "Budget\nBudget estimate follows\nHotel: ₹1500\n",
			want: "Hotel: ₹1500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := ParseItinerary(tt.text, "Goa", 1)
			assert.Equal(t, tt.want, it.EstimatedBudget)
		})
	}
}

func TestParseItinerary_PreambleBeforeFirstHeaderIgnored(t *testing.T) {
	text := "Sure, here is the plan you asked for.\nTrip Summary: compact weekend\n"
	it := ParseItinerary(text, "Pune", 2)

	assert.Equal(t, "compact weekend", it.Summary)
	assert.Empty(t, it.DailyPlans)
}

func TestSplitSections_ConcatenateBackToInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "with preamble",
			text: "Here is your plan.\nTrip Summary: quick trip\nDay 1\n9:00 AM - Walk\n",
		},
		{
			name: "header first",
			text: "Trip Summary: quick trip\nDay 1\n9:00 AM - Walk\n",
		},
		{
			name: "no headers",
			text: "plain prose, nothing recognizable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := splitSections(tt.text)
			assert.Equal(t, tt.text, strings.Join(sections, ""))
		})
	}
}

func TestParseActivities_LocationPriority(t *testing.T) {
	// Parenthesized span outranks the "at " span.
	acts := parseActivities("\n1:00 PM - Lunch (Karim's) at the old market.\n")
	require.Len(t, acts, 1)
	assert.Equal(t, "Karim's", acts[0].Location)
}

func TestParseActivities_PinEmojiOutranksParens(t *testing.T) {
	acts := parseActivities("\n9:00 AM - Walk 📍Marine Drive (south end).\n")
	require.Len(t, acts, 1)
	assert.Equal(t, "Marine Drive (south end)", acts[0].Location)
}

func TestParseActivities_BareTimeBeforeWordStartingWithAm(t *testing.T) {
	acts := parseActivities("\n10:00 Amber Fort elephant courtyard\n")
	require.Len(t, acts, 1)
	assert.Equal(t, "10:00 AM", acts[0].Time)
	assert.Equal(t, "Amber Fort elephant courtyard", acts[0].Activity)
}

func TestParseActivities_AtLocationStopsAtLineEnd(t *testing.T) {
	acts := parseActivities("\n7:00 PM - Dinner at Chokhi Dhani\nExpect folk dances\n")
	require.Len(t, acts, 1)
	assert.Equal(t, "Chokhi Dhani", acts[0].Location)
	assert.Contains(t, acts[0].Activity, "Dinner")
}

func TestParseActivities_NoTimeTokenYieldsNothing(t *testing.T) {
	assert.Empty(t, parseActivities("\nJust prose, no schedule here.\n"))
}

func TestParseActivities_EmptyDescriptionDiscarded(t *testing.T) {
	assert.Empty(t, parseActivities("\n9:00 AM - \n"))
}

func TestParseActivities_TimeNeverEmpty(t *testing.T) {
	acts := parseActivities("\n99:99 is not real but 9:00 AM - Yoga on the beach\n")
	for _, a := range acts {
		assert.NotEmpty(t, a.Time)
	}
}

func TestParseActivities_DropsPreambleBeforeFirstTime(t *testing.T) {
	acts := parseActivities("\nStart early.\n8:00 AM - Sunrise point\n")
	require.Len(t, acts, 1)
	assert.Equal(t, "Sunrise point", acts[0].Activity)
	assert.Equal(t, "8:00 AM", acts[0].Time)
}
