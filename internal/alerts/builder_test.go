package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dateminder/internal/types"
)

// Dec 20, 2026: Christmas is 5 days out, New Year's Eve 11, everything else
// further. With a 7-day window only Christmas qualifies from the global table.
var fixedNow = time.Date(2026, time.December, 20, 8, 30, 0, 0, time.UTC)

const window = 7

func TestBuildOwnershipScoping(t *testing.T) {
	people := []types.Person{
		{Name: "Ann", Birthday: "12-25", OwnerEmail: "h@x.com"},
	}

	t.Run("owner sees holiday and birthday", func(t *testing.T) {
		got := Build(fixedNow, people, types.ScopeOwner, "h@x.com", window)
		require.Len(t, got, 2)
		// Same-day tie: the global date was inserted first and stays first.
		assert.Equal(t, types.Alert{Label: "Christmas", Days: 5}, got[0])
		assert.Equal(t, types.Alert{Label: "Ann's Birthday", Days: 5}, got[1])
	})

	t.Run("owner match is case-insensitive", func(t *testing.T) {
		got := Build(fixedNow, people, types.ScopeOwner, "H@X.com", window)
		require.Len(t, got, 2)
	})

	t.Run("non-owner sees holiday only", func(t *testing.T) {
		got := Build(fixedNow, people, types.ScopeOwner, "other@x.com", window)
		require.Len(t, got, 1)
		assert.Equal(t, "Christmas", got[0].Label)
	})
}

func TestBuildLegacyPersonVisibleToAll(t *testing.T) {
	people := []types.Person{
		{Name: "Bea", Anniversary: "12-22"},
	}
	for _, email := range []string{"a@x.com", "b@y.com", ""} {
		got := Build(fixedNow, people, types.ScopeOwner, email, window)
		require.Len(t, got, 2, "subscriber %q", email)
		assert.Equal(t, "Bea's Anniversary", got[0].Label)
		assert.Equal(t, 2, got[0].Days)
	}
}

func TestBuildBroadcastIgnoresOwnership(t *testing.T) {
	people := []types.Person{
		{Name: "Ann", Birthday: "12-25", OwnerEmail: "h@x.com"},
	}
	got := Build(fixedNow, people, types.ScopeBroadcast, "stranger@y.com", window)
	require.Len(t, got, 2)
	assert.Equal(t, "Ann's Birthday", got[1].Label)
}

func TestBuildCustomDatesAndLabels(t *testing.T) {
	people := []types.Person{
		{
			Name: "Cleo",
			Custom: []types.CustomDate{
				{Label: "Adoption Day", Date: "12-21"},
				{Label: "Gotcha Day", Date: "2020-12-20"},
				{Label: "Far Away", Date: "06-15"},
			},
		},
	}
	got := Build(fixedNow, people, types.ScopeOwner, "a@x.com", window)
	require.Len(t, got, 3)
	assert.Equal(t, types.Alert{Label: "Gotcha Day (Cleo)", Days: 0}, got[0])
	assert.Equal(t, types.Alert{Label: "Adoption Day (Cleo)", Days: 1}, got[1])
	assert.Equal(t, types.Alert{Label: "Christmas", Days: 5}, got[2])
}

func TestBuildSkipsMalformedDates(t *testing.T) {
	people := []types.Person{
		{
			Name:        "Dot",
			Birthday:    "not-a-date",
			Anniversary: "12-22",
			Custom:      []types.CustomDate{{Label: "Broken", Date: "13-40"}},
		},
	}
	got := Build(fixedNow, people, types.ScopeOwner, "a@x.com", window)
	require.Len(t, got, 2)
	assert.Equal(t, "Dot's Anniversary", got[0].Label)
	assert.Equal(t, "Christmas", got[1].Label)
}

func TestBuildSortedNonDecreasing(t *testing.T) {
	people := []types.Person{
		{Name: "Eve", Birthday: "12-27"},
		{Name: "Fay", Birthday: "12-20"},
		{Name: "Gus", Birthday: "12-23"},
	}
	got := Build(fixedNow, people, types.ScopeOwner, "a@x.com", window)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Days, got[i].Days)
	}
}

func TestBuildEmptyWhenNothingQualifies(t *testing.T) {
	// Early September: no global date or personal date within a week.
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	people := []types.Person{{Name: "Ann", Birthday: "12-25"}}
	got := Build(now, people, types.ScopeOwner, "a@x.com", window)
	assert.Empty(t, got)
}
