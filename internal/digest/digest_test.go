package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dateminder/internal/types"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "", Render([]types.Alert{}))
}

func TestRenderUrgencyBands(t *testing.T) {
	tests := []struct {
		name  string
		alert types.Alert
		want  string
	}{
		{"today", types.Alert{Label: "Test", Days: 0}, "TODAY -- Test"},
		{"one day", types.Alert{Label: "A", Days: 1}, "In 1 day(s) -- A"},
		{"two days", types.Alert{Label: "X", Days: 2}, "In 2 day(s) -- X"},
		{"three days", types.Alert{Label: "B", Days: 3}, "In 3 day(s) -- B"},
		{"four days", types.Alert{Label: "C", Days: 4}, "In 4 days -- C"},
		{"five days", types.Alert{Label: "Y", Days: 5}, "In 5 days -- Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render([]types.Alert{tt.alert}))
		})
	}
}

func TestRenderJoinsWithoutTrailingNewline(t *testing.T) {
	got := Render([]types.Alert{
		{Label: "Christmas", Days: 0},
		{Label: "Ann's Birthday", Days: 2},
		{Label: "Tax Day", Days: 6},
	})
	want := "TODAY -- Christmas\nIn 2 day(s) -- Ann's Birthday\nIn 6 days -- Tax Day"
	assert.Equal(t, want, got)
}
