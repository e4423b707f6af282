package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ExpandsInclusiveRange(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	cal, err := Build(start, end)
	require.NoError(t, err)
	assert.Equal(t, 10, cal.NumDays())
	assert.Equal(t, 0, cal.Days[0].Index)
	assert.Equal(t, start, cal.Days[0].Date)
	assert.Equal(t, end, cal.Days[9].Date)
}

func TestBuild_EnumeratesWeekendPairs(t *testing.T) {
	// 2026-01-01 is a Thursday, so the first Sat/Sun pair is 3rd/4th.
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)

	cal, err := Build(start, end)
	require.NoError(t, err)
	require.Len(t, cal.WeekendPairs, 3)

	assert.Equal(t, 0, cal.WeekendPairs[0].Index)
	assert.Equal(t, time.Saturday, cal.Days[cal.WeekendPairs[0].Saturday].Weekday)
	assert.Equal(t, time.Sunday, cal.Days[cal.WeekendPairs[0].Sunday].Weekday)
	assert.Equal(t, cal.WeekendPairs[0].Saturday+1, cal.WeekendPairs[0].Sunday)
}

func TestBuild_RejectsInvertedRange(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := Build(start, end)
	assert.Error(t, err)
}

func TestParseRequiredDate_RejectsBadFormat(t *testing.T) {
	_, err := ParseRequiredDate("01/01/2026", "roster_start")
	assert.Error(t, err)
}

func TestParseOptionalDate_NilForEmpty(t *testing.T) {
	t0, err := ParseOptionalDate(nil, "last_standby")
	require.NoError(t, err)
	assert.Nil(t, t0)

	empty := ""
	t1, err := ParseOptionalDate(&empty, "last_standby")
	require.NoError(t, err)
	assert.Nil(t, t1)
}
