package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBilledHours_SameDayWindow(t *testing.T) {
	window := TimeWindow{StartTime: "18:00", EndTime: "23:00"}
	assert.Equal(t, 5, window.BilledHours())
}

func TestBilledHours_WrapsMidnight(t *testing.T) {
	window := TimeWindow{StartTime: "22:00", EndTime: "02:00"}
	assert.Equal(t, 4, window.BilledHours())
}

func TestBilledHours_PartialHourRoundsUp(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"one minute over", "18:00", "19:01", 2},
		{"half hour", "18:00", "18:30", 1},
		{"59 minutes", "18:00", "18:59", 1},
		{"exact hours", "10:00", "14:00", 4},
		{"wrap with partial", "23:30", "01:00", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := TimeWindow{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.expected, window.BilledHours())
		})
	}
}

func TestBilledHours_EqualEndpointsWrapFullDay(t *testing.T) {
	// end == start reads as a 24-hour rental, not zero
	window := TimeWindow{StartTime: "10:00", EndTime: "10:00"}
	assert.Equal(t, 24, window.BilledHours())
}

func TestBilledHours_MalformedInputsYieldZero(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty both", "", ""},
		{"empty end", "18:00", ""},
		{"empty start", "", "23:00"},
		{"not a clock", "abc", "23:00"},
		{"hour out of range", "25:00", "23:00"},
		{"minute out of range", "18:61", "23:00"},
		{"missing minutes", "18", "23:00"},
		{"negative hour", "-1:00", "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := TimeWindow{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, 0, window.BilledHours())
		})
	}
}

func TestBilledHours_NeverNegative(t *testing.T) {
	for _, window := range []TimeWindow{
		{StartTime: "23:59", EndTime: "00:00"},
		{StartTime: "00:00", EndTime: "23:59"},
		{StartTime: "12:00", EndTime: "11:59"},
	} {
		assert.GreaterOrEqual(t, window.BilledHours(), 0)
	}
}

func TestIsComplete(t *testing.T) {
	assert.True(t, TimeWindow{StartTime: "18:00", EndTime: "23:00"}.IsComplete())
	assert.False(t, TimeWindow{StartTime: "18:00"}.IsComplete())
	assert.False(t, TimeWindow{}.IsComplete())
	assert.False(t, TimeWindow{StartTime: "18:00", EndTime: "24:00"}.IsComplete())
}
