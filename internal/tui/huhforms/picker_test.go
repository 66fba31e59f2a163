package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plazo/internal/config/colors"
	"github.com/thenoetrevino/plazo/internal/database"
)

func TestProjectOptions(t *testing.T) {
	options := ProjectOptions(database.MockProjects())

	require.Len(t, options, 5)
	assert.Equal(t, "proj4", options[3].Value)
	assert.Contains(t, options[3].Key, "Marketing Campaign")
	assert.Contains(t, options[3].Key, "2026-10-01 → 2026-12-31")
	assert.Contains(t, options[3].Key, "(5 tasks)")
}

func TestProjectPicker_Builds(t *testing.T) {
	selected := "proj2"
	form := ProjectPicker(database.MockProjects(), &selected, *colors.Default())

	require.NotNil(t, form)
	assert.Equal(t, "proj2", selected)
}

func TestPickerKeyMap_Quit(t *testing.T) {
	km := PickerKeyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc", "q"}, km.Quit.Keys())
}
