package models

// Activity is one scheduled item inside a day plan. Time is the normalized
// 12-hour clock string, or the raw token when normalization was impossible.
type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// DayPlan holds the ordered activities for a single day.
type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// StructuredItinerary is the parsed form of a free-text generated itinerary.
// Destination and Duration are echoed from the request, never derived from
// the text. DailyPlans are sorted ascending by day number.
type StructuredItinerary struct {
	Destination     string    `json:"destination"`
	Duration        int       `json:"duration"`
	Summary         string    `json:"summary"`
	DailyPlans      []DayPlan `json:"daily_plans"`
	Tips            []string  `json:"tips"`
	EstimatedBudget string    `json:"estimated_budget"`
}

// ItineraryRequest is the payload for generating an itinerary.
type ItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Interests   []string `json:"interests"`
}
