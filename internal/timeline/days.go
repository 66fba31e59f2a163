package timeline

import (
	"time"

	"github.com/thenoetrevino/plazo/internal/models"
)

// Day is one column of the timeline header
type Day struct {
	Date      time.Time `json:"date"`
	Offset    int       `json:"offset"`
	IsWeekend bool      `json:"is_weekend"`
	IsToday   bool      `json:"is_today"`
}

// Days returns one entry per calendar day of the project, start to end inclusive
func (e *Engine) Days(p *models.Project) []Day {
	span := ProjectSpanDays(p)
	if span <= 0 {
		return nil
	}
	now := e.now()
	days := make([]Day, span)
	for i := range span {
		d := AddDays(p.Start(), i)
		days[i] = Day{
			Date:      d,
			Offset:    i,
			IsWeekend: isWeekend(d),
			IsToday:   SameDay(d, now),
		}
	}
	return days
}

// ScrollToTodayOffset returns the pixel offset of today's column. ok is false
// when today precedes the project start, in which case no scroll should happen.
func (e *Engine) ScrollToTodayOffset(p *models.Project, columnWidth int) (offset int, ok bool) {
	days := DaysBetween(p.Start(), e.now())
	if days < 0 {
		return 0, false
	}
	return days * columnWidth, true
}

// CenteredScroll turns a target offset into a scroll position that puts the
// target in the middle of a viewport of the given width
func CenteredScroll(offset, viewportWidth int) int {
	return max(0, offset-viewportWidth/2)
}
