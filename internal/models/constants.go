package models

// ============================================================================
// PROGRESS CONSTANTS
// ============================================================================

const (
	MinProgress = 0
	MaxProgress = 100
)
