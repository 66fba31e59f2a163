package timeline

import (
	"github.com/thenoetrevino/plazo/internal/models"
)

// Bar is the render geometry of one task
type Bar struct {
	Task            *models.Task       `json:"task"`
	StartOffsetDays int                `json:"start_offset_days"`
	DurationDays    int                `json:"duration_days"`
	Left            int                `json:"left"`
	Width           int                `json:"width"`
	StatusClass     models.StatusClass `json:"status_class"`
}

// ProjectSpanDays returns the number of day columns the project occupies,
// counting both the start and end dates.
func ProjectSpanDays(p *models.Project) int {
	return DaysBetween(p.Start(), p.End()) + 1
}

// TotalWidth returns the pixel width of the whole project at the given zoom
func TotalWidth(p *models.Project, columnWidth int) int {
	return max(ProjectSpanDays(p), 0) * columnWidth
}

// Position returns the day offset and duration of a task relative to the
// project. Task dates outside the project range are truncated to it; tasks
// are never dropped. The offset is at least 0 and the duration at least 1.
func Position(p *models.Project, t *models.Task) (startOffsetDays, durationDays int) {
	effectiveStart := maxTime(t.Start(), p.Start())
	effectiveEnd := minTime(t.Due(), p.End())

	startOffsetDays = max(0, DaysBetween(p.Start(), effectiveStart))
	durationDays = max(1, DaysBetween(effectiveStart, effectiveEnd)+1)

	// keep the bar inside the project span when the task lies beyond its end
	if span := ProjectSpanDays(p); span >= 1 {
		startOffsetDays = min(startOffsetDays, span-1)
		durationDays = max(1, min(durationDays, span-startOffsetDays))
	}
	return startOffsetDays, durationDays
}

// Compute lays out every task of the project in task order
func (e *Engine) Compute(p *models.Project, columnWidth int) []Bar {
	return e.layout(p, p.Tasks, columnWidth)
}

// ComputeFiltered lays out only the tasks that pass the filter. Offsets stay
// relative to the full project range, not to the filtered subset.
func (e *Engine) ComputeFiltered(p *models.Project, columnWidth int, filter models.Filter) []Bar {
	return e.layout(p, FilterTasks(p.Tasks, filter), columnWidth)
}

func (e *Engine) layout(p *models.Project, tasks []*models.Task, columnWidth int) []Bar {
	now := e.now()
	bars := make([]Bar, 0, len(tasks))
	for _, t := range tasks {
		offset, duration := Position(p, t)
		bars = append(bars, Bar{
			Task:            t,
			StartOffsetDays: offset,
			DurationDays:    duration,
			Left:            offset * columnWidth,
			Width:           max(duration*columnWidth, e.minBarWidth),
			StatusClass:     ClassifyStatus(t, now),
		})
	}
	return bars
}
