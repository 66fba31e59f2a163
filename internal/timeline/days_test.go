package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	p := tenDayProject()
	e := NewEngine(fixedClock("2024-01-03"))

	days := e.Days(p)
	require.Len(t, days, 10)
	assert.Equal(t, "2024-01-01", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-10", days[9].Date.Format("2006-01-02"))

	// 2024-01-06 and 2024-01-07 are a Saturday and Sunday
	assert.True(t, days[5].IsWeekend)
	assert.True(t, days[6].IsWeekend)
	assert.False(t, days[0].IsWeekend)

	assert.True(t, days[2].IsToday)
	for i, d := range days {
		if i != 2 {
			assert.False(t, d.IsToday)
		}
	}
}

func TestScrollToTodayOffset(t *testing.T) {
	p := tenDayProject()

	offset, ok := NewEngine(fixedClock("2024-01-05")).ScrollToTodayOffset(p, 40)
	assert.True(t, ok)
	assert.Equal(t, 160, offset)

	offset, ok = NewEngine(fixedClock("2024-01-01")).ScrollToTodayOffset(p, 40)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	_, ok = NewEngine(fixedClock("2023-12-31")).ScrollToTodayOffset(p, 40)
	assert.False(t, ok, "today before the project start must not scroll")
}

func TestToday_NonUTCClock(t *testing.T) {
	p := tenDayProject()
	// 20:00 on Jan 5 in California is Jan 6 in UTC
	now := time.Date(2024, time.January, 5, 20, 0, 0, 0, time.FixedZone("PDT", -7*60*60))
	e := NewEngine(WithClock(func() time.Time { return now }))

	offset, ok := e.ScrollToTodayOffset(p, 40)
	assert.True(t, ok)
	assert.Equal(t, 160, offset)

	days := e.Days(p)
	assert.True(t, days[4].IsToday)
	assert.False(t, days[5].IsToday)
}

func TestCenteredScroll(t *testing.T) {
	assert.Equal(t, 0, CenteredScroll(100, 400))
	assert.Equal(t, 300, CenteredScroll(500, 400))
}

func TestProjectSpanAndTotalWidth(t *testing.T) {
	p := tenDayProject()
	assert.Equal(t, 10, ProjectSpanDays(p))
	assert.Equal(t, 400, TotalWidth(p, 40))
}
