package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrInvalidStatus, ErrInvalidPriority) {
		t.Error("ErrInvalidStatus should not equal ErrInvalidPriority")
	}
	if errors.Is(ErrInvalidFilter, ErrInvalidStatus) {
		t.Error("ErrInvalidFilter should not equal ErrInvalidStatus")
	}
}

// ============================================================================
// Parse Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"todo", StatusTodo},
		{"InProgress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{" review ", StatusReview},
		{"done", StatusCompleted},
		{"completed", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStatus("blocked")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, got)

	_, err = ParsePriority("critical")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseFilter(t *testing.T) {
	got, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, got)

	got, err = ParseFilter("inprogress")
	require.NoError(t, err)
	assert.Equal(t, FilterInProgress, got)

	_, err = ParseFilter("overdue")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilter_Matches(t *testing.T) {
	assert.True(t, FilterInProgress.Matches(StatusReview), "review counts as in progress")
	assert.True(t, FilterInProgress.Matches(StatusInProgress))
	assert.False(t, FilterInProgress.Matches(StatusTodo))
	assert.True(t, FilterCompleted.Matches(StatusCompleted))
	assert.False(t, FilterTodo.Matches(StatusCompleted))
	for _, s := range AllStatuses {
		assert.True(t, FilterAll.Matches(s))
	}
}

// ============================================================================
// Date Tests
// ============================================================================

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDate_YAML(t *testing.T) {
	var task Task
	err := yaml.Unmarshal([]byte("id: t1\nstart_date: 2024-01-05\ndeadline: 2024-01-07\n"), &task)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", task.StartDate.String())
	assert.Equal(t, "2024-01-07", task.Deadline.String())

	err = yaml.Unmarshal([]byte("start_date: 05/01/2024\n"), &task)
	assert.Error(t, err)
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_HoursProgress(t *testing.T) {
	assert.Equal(t, 0, (&Task{}).HoursProgress())
	assert.Equal(t, 50, (&Task{EstimatedHours: 10, LoggedHours: 5}).HoursProgress())
	assert.Equal(t, 100, (&Task{EstimatedHours: 4, LoggedHours: 9}).HoursProgress())
}
