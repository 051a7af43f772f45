package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase meridiem", in: "2:30pm", want: "2:30 PM"},
		{name: "24 hour afternoon", in: "14:00", want: "2:00 PM"},
		{name: "morning heuristic", in: "9:00", want: "9:00 AM"},
		{name: "heuristic lower bound", in: "5:15", want: "5:15 AM"},
		{name: "heuristic upper bound", in: "11:59", want: "11:59 AM"},
		{name: "early hour defaults to pm", in: "4:00", want: "4:00 PM"},
		{name: "bare noon treated as pm", in: "12:00", want: "12:00 PM"},
		{name: "midnight hour displays as twelve", in: "0:30", want: "12:30 PM"},
		{name: "explicit midnight", in: "12:00 AM", want: "12:00 AM"},
		{name: "explicit noon", in: "12:00 PM", want: "12:00 PM"},
		{name: "leading zero stripped", in: "09:05 am", want: "9:05 AM"},
		{name: "late evening 24h", in: "23:45", want: "11:45 PM"},
		{name: "spaced meridiem", in: "7:10 Pm", want: "7:10 PM"},
		{name: "passthrough garbage", in: "not-a-time", want: "not-a-time"},
		{name: "passthrough trailing word", in: "10:00 Amber", want: "10:00 Amber"},
		{name: "passthrough bad minutes", in: "9:75", want: "9:75"},
		{name: "passthrough empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.in))
		})
	}
}

func TestNormalizeTimeNeverPanics(t *testing.T) {
	for _, in := range []string{":", "::", "1:2", "abc:def", "25:00", "  3:00 pm  "} {
		assert.NotPanics(t, func() { NormalizeTime(in) })
	}
}
